package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"

	"github.com/evilsocket/islazy/str"
)

var runScriptletHandler = handler{
	Name:        "RUN",
	Mnemonic:    "RUN <ID> [ARGUMENTS]",
	Completer:   readline.PcItem("run"),
	Parser:      regexp.MustCompile(`^(?i)(RUN)\s+(\d+)\s*(.*)$`),
	Description: "Run the scriptlet <ID> with the specified comma separated [ARGUMENTS].",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}

		call := pb.Call{
			ScriptletId: id,
			Args:        str.Comma(args[1]),
		}
		resp, err := client.Run(context.TODO(), &call)
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("%s\n", resp.Json)

		return nil
	},
}
