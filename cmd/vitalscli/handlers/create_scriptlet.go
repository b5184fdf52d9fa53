package handlers

import (
	"context"
	"fmt"
	"io/ioutil"
	"regexp"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"
)

var createScriptletHandler = handler{
	Name:        "SCREATE",
	Mnemonic:    "SCREATE or SC <NAME> <FILEPATH>",
	Completer:   readline.PcItem("screate"),
	Parser:      regexp.MustCompile(`^(?i)(SCREATE|SC)\s+([^\s]+)\s+(.+)$`),
	Description: "Create a scriptlet with a given <NAME> and the code from a given <FILEPATH>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		name := args[0]
		path := args[1]
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}

		scriptlet := pb.Scriptlet{
			Name: name,
			Code: string(data),
		}
		resp, err := client.CreateScriptlet(context.TODO(), &scriptlet)
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("scriptlet created with id %s\n", resp.Msg)

		return nil
	},
}
