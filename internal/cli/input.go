package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/xiam/sexpr/internal/config"
	"github.com/xiam/sexpr/internal/logging"
)

const stdinName = "<stdin>"

// input is one source handed to a command.
type input struct {
	name string
	path string
	data []byte
}

func normalize(data []byte, form string) []byte {
	switch form {
	case config.NormalizeNFC:
		return norm.NFC.Bytes(data)
	case config.NormalizeNFD:
		return norm.NFD.Bytes(data)
	}
	return data
}

// readInput reads the file named by args, or stdin when args is empty or
// "-".
func (g *globals) readInput(cmd *cobra.Command, args []string) (*input, error) {
	in := &input{name: stdinName}

	var err error
	if len(args) == 0 || args[0] == "-" {
		in.data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		in.name, in.path = args[0], args[0]
		in.data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, ioError(fmt.Errorf("read %s: %w", in.name, err))
	}

	in.data = normalize(in.data, g.cfg.Normalize)

	logging.FromContext(cmd.Context()).Debug("read input",
		logging.FieldInput, in.name,
		logging.FieldBytes, len(in.data),
		logging.FieldNormalize, g.cfg.Normalize,
	)
	return in, nil
}
