package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"
)

var deleteProfileHandler = handler{
	Name:        "DELETE",
	Mnemonic:    "DELETE or D <ID>",
	Completer:   readline.PcItem("delete"),
	Parser:      regexp.MustCompile(`^(?i)(DELETE|D)\s+(\d+)$`),
	Description: "Delete a profile given its <ID>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}

		resp, err := client.DeleteProfile(context.TODO(), &pb.ById{Id: id})
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("profile %d successfully deleted.\n", id)

		return nil
	},
}
