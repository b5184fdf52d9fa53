package handlers

import (
	"context"
	"fmt"
	"io/ioutil"
	"regexp"
	"strconv"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"
)

var updateScriptletHandler = handler{
	Name:        "SUPDATE",
	Mnemonic:    "SUPDATE or SU <ID> <NAME> <FILEPATH>",
	Completer:   readline.PcItem("supdate"),
	Parser:      regexp.MustCompile(`^(?i)(SUPDATE|SU)\s+(\d+)\s+([^\s]+)\s+(.+)$`),
	Description: "Update a scriptlet given its <ID> with a new <NAME> and the code from a given <FILEPATH>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		name := args[1]
		path := args[2]
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}

		scriptlet := pb.Scriptlet{
			Id:   id,
			Name: name,
			Code: string(data),
		}
		resp, err := client.UpdateScriptlet(context.TODO(), &scriptlet)
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("scriptlet %d successfully updated.\n", id)

		return nil
	},
}
