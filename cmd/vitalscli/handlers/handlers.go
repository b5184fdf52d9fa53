package handlers

import (
	"fmt"
	"regexp"
	"strings"

	pb "github.com/kernlab/vitals/proto"

	"github.com/chzyer/readline"
)

type handlerCb func(cmd string, args []string, reader *readline.Instance, client pb.VitalsServiceClient) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

var Handlers = []handler{}
var Completers = (*readline.PrefixCompleter)(nil)

func init() {
	Handlers = []handler{
		helpHandler,
		quitHandler,
		infoHandler,
		// profiles CRUD
		createProfileHandler,
		readProfileHandler,
		updateProfileHandler,
		deleteProfileHandler,
		// scriptlets CRUD and execution
		createScriptletHandler,
		readScriptletHandler,
		updateScriptletHandler,
		deleteScriptletHandler,
		runScriptletHandler,
	}

	tmp := []readline.PrefixCompleterInterface{}
	for _, h := range Handlers {
		if h.Completer != nil {
			tmp = append(tmp, h.Completer)
		}
	}
	Completers = readline.NewPrefixCompleter(tmp...)
}

// Dispatch matches a command line against the handlers table and
// executes the first matching handler.
func Dispatch(cmd string, reader *readline.Instance, client pb.VitalsServiceClient) error {
	for _, handler := range Handlers {
		match := false
		args := []string{}

		if handler.Parser != nil {
			if result := handler.Parser.FindStringSubmatch(cmd); result != nil && len(result) == handler.Parser.NumSubexp()+1 {
				cmd = result[1:][0]
				args = result[1:][1:]
				match = true
			}
		} else if strings.EqualFold(handler.Name, cmd) {
			match = true
		}

		if match {
			return handler.Callback(cmd, args, reader, client)
		}
	}

	return fmt.Errorf("command not found: %s", cmd)
}
