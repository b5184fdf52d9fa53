package handlers

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"
)

func dataAsString(data []float32, limit int) string {
	tot := len(data)
	num := tot
	if limit > 0 && limit < tot {
		num = limit
	}
	strs := make([]string, num)
	for i := 0; i < num; i++ {
		f := data[i]
		if f == 0.0 {
			strs[i] = "0"
		} else if f == 1.0 {
			strs[i] = "1"
		} else {
			strs[i] = fmt.Sprintf("%f", f)
		}
	}
	s := strings.Join(strs, ",")
	if num < tot {
		s += " ..."
	}
	return s
}

func metaAsString(meta map[string]string) string {
	keys := []string{}
	for key := range meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := []string{}
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, meta[key]))
	}
	return strings.Join(parts, " ")
}

func showProfile(profile *pb.Profile, dataLimit int) {
	fmt.Printf("id   : %d\n", profile.Id)
	fmt.Printf("data : %s\n", dataAsString(profile.Data, dataLimit))
	fmt.Printf("meta : %s\n", metaAsString(profile.Meta))
}

var readProfileHandler = handler{
	Name:        "READ",
	Mnemonic:    "READ or R <ID>",
	Completer:   readline.PcItem("read"),
	Parser:      regexp.MustCompile(`^(?i)(READ|R)\s+(\d+)$`),
	Description: "Read the data and metadata of a profile given its <ID>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}

		resp, err := client.ReadProfile(context.TODO(), &pb.ById{Id: id})
		if err != nil {
			return err
		} else if resp.Success == false {
			return fmt.Errorf("%s", resp.Msg)
		}

		showProfile(resp.Profile, 0)

		return nil
	},
}
