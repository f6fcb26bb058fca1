package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/beanboi7/chyp8/emu/disasm"
	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

var (
	disasmOutput  string
	noHexComments bool
	noOffsets     bool
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print an assembler listing of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  Disasm,
}

func init() {
	flags := disasmCmd.Flags()
	flags.StringVarP(&disasmOutput, "output", "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&noHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&noOffsets, "nooffsets", false, "do not output offsets in comments")
}

// chyp8 disasm 'path/to/ROM' -o game.asm
func Disasm(cmd *cobra.Command, args []string) error {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}
	if len(rom) > memory.MaxProgramSize {
		logger.Warn("ROM is larger than the program space",
			log.Int("size", len(rom)),
			log.Int("max", memory.MaxProgramSize))
	}

	var out io.Writer = cmd.OutOrStdout()
	if disasmOutput != "" {
		file, err := os.Create(disasmOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	options := disasm.Options{
		HexComments:    !noHexComments,
		OffsetComments: !noOffsets,
	}
	if err := disasm.Write(out, rom, options); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
