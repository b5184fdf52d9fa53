package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"
)

var updateProfileHandler = handler{
	Name:        "UPDATE",
	Mnemonic:    "UPDATE or U <ID> <DATA>",
	Completer:   readline.PcItem("update"),
	Parser:      regexp.MustCompile(`^(?i)(UPDATE|U)\s+(\d+)\s+(.+)$`),
	Description: "Update a profile given its <ID> with new comma separated <DATA> values.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}

		data, err := parseData(args[1])
		if err != nil {
			return err
		}

		profile := pb.Profile{
			Id:   id,
			Data: data,
		}
		resp, err := client.UpdateProfile(context.TODO(), &profile)
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("profile %d successfully updated.\n", id)

		return nil
	},
}
