// Package pgn writes finished games in a PGN-like text form. Moves are
// written in coordinate notation since variant boards have no SAN.
package pgn

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	GameResultNone     = "*"
	GameResultWhiteWin = "1-0"
	GameResultBlackWin = "0-1"
	GameResultDraw     = "1/2-1/2"
)

const lineWidth = 80

type Tag struct {
	Key   string
	Value string
}

type Game struct {
	Tags   []Tag
	Moves  []string
	Result string
}

func (g *Game) TagValue(key string) (string, bool) {
	for _, tag := range g.Tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

// Write appends the game followed by an empty line.
func Write(w io.Writer, g *Game) error {
	var sb strings.Builder
	for _, tag := range g.Tags {
		fmt.Fprintf(&sb, "[%s %s]\n", tag.Key, strconv.Quote(tag.Value))
	}
	var result = g.Result
	if result == "" {
		result = GameResultNone
	}
	if _, ok := g.TagValue("Result"); !ok {
		fmt.Fprintf(&sb, "[Result %s]\n", strconv.Quote(result))
	}
	sb.WriteString("\n")

	var lineLen = 0
	var writeToken = func(token string) {
		if lineLen != 0 && lineLen+1+len(token) > lineWidth {
			sb.WriteString("\n")
			lineLen = 0
		}
		if lineLen != 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(token)
		lineLen += len(token)
	}
	for i, move := range g.Moves {
		if i%2 == 0 {
			writeToken(strconv.Itoa(i/2+1) + ".")
		}
		writeToken(move)
	}
	writeToken(result)
	sb.WriteString("\n\n")

	var _, err = io.WriteString(w, sb.String())
	return err
}
