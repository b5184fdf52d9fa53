package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"
)

var deleteScriptletHandler = handler{
	Name:        "SDELETE",
	Mnemonic:    "SDELETE or SD <ID>",
	Completer:   readline.PcItem("sdelete"),
	Parser:      regexp.MustCompile(`^(?i)(SDELETE|SD)\s+(\d+)$`),
	Description: "Delete a scriptlet given its <ID>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}

		resp, err := client.DeleteScriptlet(context.TODO(), &pb.ById{Id: id})
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("scriptlet %d successfully deleted.\n", id)

		return nil
	},
}
