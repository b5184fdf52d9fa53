package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"
)

var readScriptletHandler = handler{
	Name:        "SREAD",
	Mnemonic:    "SREAD or SR <ID>",
	Completer:   readline.PcItem("sread"),
	Parser:      regexp.MustCompile(`^(?i)(SREAD|SR)\s+(\d+)$`),
	Description: "Read the name and code of a scriptlet given its <ID>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}

		resp, err := client.ReadScriptlet(context.TODO(), &pb.ById{Id: id})
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("id   : %d\n", resp.Scriptlet.Id)
		fmt.Printf("name : %s\n", resp.Scriptlet.Name)
		fmt.Printf("code :\n\n%s\n", resp.Scriptlet.Code)

		return nil
	},
}
