package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
	"github.com/ChizhovVadim/VariantGo/pkg/engine"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

// Protocol is a line based console for playing against the engine.
type Protocol struct {
	variant *variants.Variant
	options engine.Options
	logger  zerolog.Logger
	out     io.Writer
	off     *engine.AiOff
	on      *engine.AiOn
}

func New(v *variants.Variant, b *Board, options engine.Options, out io.Writer) *Protocol {
	return &Protocol{
		variant: v,
		options: options,
		logger:  options.Logger,
		out:     out,
		off:     engine.NewAiOff(b, options),
	}
}

// Run reads commands until "quit" or the end of input.
func (c *Protocol) Run(in io.Reader) {
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(in, commands)
	}()

	var watching *engine.AiOn
	var searchDone <-chan struct{}
	for {
		select {
		case <-searchDone:
			searchDone = nil
			if move, ok := c.on.CurrentBestMove(); ok {
				fmt.Fprintf(c.out, "search complete, depth %d, best %v\n",
					c.on.Depth(), c.moveName(move))
			}
		case commandLine, ok := <-commands:
			if !ok {
				if c.on != nil {
					c.finish()
				}
				return
			}
			var err = c.handle(commandLine)
			if err != nil {
				c.logger.Error().Err(err).Str("command", commandLine).Msg("command failed")
				fmt.Fprintln(c.out, "error:", err)
			}
			if c.on != watching {
				watching, searchDone = c.on, nil
				if c.on != nil {
					searchDone = c.on.Done()
				}
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (c *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "show":
		h = c.showCommand
	case "moves":
		h = c.movesCommand
	case "play":
		h = c.playCommand
	case "undo":
		h = c.undoCommand
	case "go":
		h = c.goCommand
	case "best":
		h = c.bestCommand
	case "stop":
		h = c.stopCommand
	case "auto":
		h = c.autoCommand
	}

	if h == nil {
		return errors.New("command not found")
	}
	if c.on != nil {
		switch commandName {
		case "best", "stop", "auto":
		default:
			return errors.New("search still running")
		}
	}
	return h(fields)
}

func (c *Protocol) moveName(idx MoveIdx) string {
	var m Move
	var err error
	if c.on != nil {
		m, err = c.on.Move(idx)
	} else {
		m, err = c.off.BoardData().Move(idx)
	}
	if err != nil {
		return strconv.Itoa(int(idx))
	}
	return c.variant.MoveName(m)
}

func (c *Protocol) showCommand(fields []string) error {
	var b = c.off.Board()
	PrintBoard(c.out, c.variant, b)
	var bd = c.off.BoardData()
	fmt.Fprintf(c.out, "%v to move, move %d, evaluation %v", b.Turn(), b.MoveNumber(), bd.Evaluation())
	if bd.IsCheck() {
		fmt.Fprint(c.out, ", check")
	}
	if bd.IsTerminal() {
		fmt.Fprint(c.out, ", game over")
	}
	fmt.Fprintln(c.out)
	return nil
}

func (c *Protocol) movesCommand(fields []string) error {
	for i, m := range c.off.Moves() {
		fmt.Fprintf(c.out, "%3d %v\n", i, c.variant.MoveName(m))
	}
	return nil
}

func (c *Protocol) playCommand(fields []string) error {
	if len(fields) != 1 {
		return errors.New("usage: play <index|move>")
	}
	var idx, err = c.parseMove(fields[0])
	if err != nil {
		return err
	}
	var name = c.moveName(idx)
	if err := c.off.MakeMove(idx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "played", name)
	return nil
}

func (c *Protocol) parseMove(s string) (MoveIdx, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return MoveIdx(n), nil
	}
	return c.variant.FindMove(c.off.Moves(), s)
}

func (c *Protocol) undoCommand(fields []string) error {
	return c.off.UnmakeMove()
}

func (c *Protocol) goCommand(fields []string) error {
	if c.off.BoardData().IsTerminal() {
		return errors.New("game is over")
	}
	c.on = c.off.Start()
	c.off = nil
	return nil
}

func (c *Protocol) bestCommand(fields []string) error {
	if c.on == nil {
		return errors.New("search is not running")
	}
	var move, ok = c.on.CurrentBestMove()
	if !ok {
		fmt.Fprintln(c.out, "no move yet")
		return nil
	}
	fmt.Fprintf(c.out, "best %v at depth %d\n", c.moveName(move), c.on.Depth())
	return nil
}

func (c *Protocol) finish() (MoveIdx, bool) {
	var off, move, ok = c.on.Finish()
	c.off, c.on = off, nil
	return move, ok
}

func (c *Protocol) stopCommand(fields []string) error {
	if c.on == nil {
		return errors.New("search is not running")
	}
	var move, ok = c.finish()
	if !ok {
		return errors.New("search stopped before the first iteration")
	}
	fmt.Fprintln(c.out, "bestmove", c.moveName(move))
	return nil
}

func (c *Protocol) autoCommand(fields []string) error {
	if c.on == nil {
		return errors.New("search is not running")
	}
	var move, ok = c.finish()
	if !ok {
		return errors.New("search stopped before the first iteration")
	}
	var name = c.moveName(move)
	if err := c.off.MakeMove(move); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "played", name)
	return nil
}
