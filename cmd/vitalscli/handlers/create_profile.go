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

func parseData(raw string) ([]float32, error) {
	parts := str.Comma(raw)
	data := make([]float32, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, fmt.Errorf("can not parse '%s' as a number: %s", part, err)
		}
		data[i] = float32(v)
	}
	return data, nil
}

var createProfileHandler = handler{
	Name:        "CREATE",
	Mnemonic:    "CREATE or C <DATA>",
	Completer:   readline.PcItem("create"),
	Parser:      regexp.MustCompile(`^(?i)(CREATE|C)\s+(.+)$`),
	Description: "Create a profile with the given comma separated <DATA> values.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		data, err := parseData(args[0])
		if err != nil {
			return err
		}

		profile := pb.Profile{
			Data: data,
			Meta: map[string]string{},
		}
		resp, err := client.CreateProfile(context.TODO(), &profile)
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("profile created with id %s\n", resp.Msg)

		return nil
	},
}
