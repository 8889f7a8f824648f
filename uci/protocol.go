// Package uci adapts engine.Engine to the Universal Chess Interface text
// protocol: a line-oriented command/response loop over stdin/stdout.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/engine"
)

const (
	engineName   = "corvid"
	engineAuthor = "corvidchess"
)

// Protocol runs the read-eval-respond loop, grounded on the teacher's
// Protocol type (pkg/uci/protocol.go), reduced to a single synchronous
// engine (no goroutine pool, since Threads is pinned to 1) with the
// in-flight search run on its own goroutine so "stop" and "isready" can
// still be answered while thinking.
type Protocol struct {
	engine *engine.Engine

	outMu sync.Mutex
	out   *bufio.Writer

	mu       sync.Mutex
	thinking bool
}

// New builds a Protocol writing responses to out.
func New(out io.Writer) *Protocol {
	return &Protocol{
		engine: engine.NewEngine(),
		out:    bufio.NewWriter(out),
	}
}

// Run reads UCI commands from in until EOF or "quit".
func (p *Protocol) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !p.handle(line) {
			return
		}
	}
}

func (p *Protocol) handle(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "uci":
		p.onUCI()
	case "isready":
		p.writeLine("readyok")
	case "setoption":
		p.onSetOption(fields[1:])
	case "ucinewgame":
		p.engine.NewGame()
	case "position":
		p.onPosition(fields[1:])
	case "go":
		p.onGo(fields[1:])
	case "stop":
		p.engine.Stop()
	case "quit":
		return false
	}
	return true
}

func (p *Protocol) onUCI() {
	p.writeLine(fmt.Sprintf("id name %s", engineName))
	p.writeLine(fmt.Sprintf("id author %s", engineAuthor))
	p.writeLine("option name Hash type spin default 64 min 1 max 1024")
	p.writeLine("option name Threads type spin default 1 min 1 max 1")
	p.writeLine("uciok")
}

func (p *Protocol) onSetOption(args []string) {
	name, value := parseNameValue(args)
	switch strings.ToLower(name) {
	case "hash":
		if mb, err := strconv.Atoi(value); err == nil {
			p.engine.SetHash(mb)
		}
	case "threads":
		// Threads is pinned to 1; the option is accepted but ignored.
	}
}

// parseNameValue extracts the "name" and "value" payloads from a
// setoption command's trailing fields.
func parseNameValue(args []string) (name, value string) {
	var nameParts, valueParts []string
	mode := ""
	for _, f := range args {
		switch f {
		case "name":
			mode = "name"
			continue
		case "value":
			mode = "value"
			continue
		}
		switch mode {
		case "name":
			nameParts = append(nameParts, f)
		case "value":
			valueParts = append(valueParts, f)
		}
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " ")
}

func (p *Protocol) onPosition(args []string) {
	if len(args) == 0 {
		return
	}
	var movesIdx int
	switch args[0] {
	case "startpos":
		p.engine.SetStartPos()
		movesIdx = 1
	case "fen":
		end := 1
		for end < len(args) && args[end] != "moves" {
			end++
		}
		fen := strings.Join(args[1:end], " ")
		if err := p.engine.SetPosition(fen); err != nil {
			return
		}
		movesIdx = end
	default:
		return
	}
	if movesIdx < len(args) && args[movesIdx] == "moves" {
		for _, uciMove := range args[movesIdx+1:] {
			p.engine.ApplyUCIMove(uciMove)
		}
	}
}

func (p *Protocol) onGo(args []string) {
	p.mu.Lock()
	if p.thinking {
		p.mu.Unlock()
		return
	}
	p.thinking = true
	p.mu.Unlock()

	limits := parseLimits(args)
	go func() {
		defer func() {
			p.mu.Lock()
			p.thinking = false
			p.mu.Unlock()
		}()
		result := p.engine.Think(limits, p.onInfo)
		p.writeLine("bestmove " + bestMoveString(result.PV))
	}()
}

func bestMoveString(pv []board.Move) string {
	if len(pv) == 0 {
		return "0000"
	}
	return pv[0].String()
}

func parseLimits(args []string) engine.Limits {
	var l engine.Limits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			l.Depth = atoiSafe(args, i)
		case "movetime":
			i++
			l.MoveTime = time.Duration(atoiSafe(args, i)) * time.Millisecond
		case "wtime":
			i++
			l.WTime = time.Duration(atoiSafe(args, i)) * time.Millisecond
		case "btime":
			i++
			l.BTime = time.Duration(atoiSafe(args, i)) * time.Millisecond
		case "winc":
			i++
			l.WInc = time.Duration(atoiSafe(args, i)) * time.Millisecond
		case "binc":
			i++
			l.BInc = time.Duration(atoiSafe(args, i)) * time.Millisecond
		case "movestogo":
			i++
			l.MovesToGo = atoiSafe(args, i)
		case "infinite":
			l.Infinite = true
		}
	}
	return l
}

func atoiSafe(args []string, i int) int {
	if i < 0 || i >= len(args) {
		return 0
	}
	n, _ := strconv.Atoi(args[i])
	return n
}

func (p *Protocol) onInfo(info engine.SearchInfo) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d seldepth %d", info.Depth, info.SelDepth)
	if info.Mate != 0 {
		fmt.Fprintf(&sb, " score mate %d", info.Mate)
	} else {
		fmt.Fprintf(&sb, " score cp %d", info.Score)
	}
	nps := uint64(0)
	if info.Time > 0 {
		nps = uint64(float64(info.Nodes) / info.Time.Seconds())
	}
	fmt.Fprintf(&sb, " nodes %d nps %d time %d", info.Nodes, nps, info.Time.Milliseconds())
	if len(info.PV) > 0 {
		sb.WriteString(" pv")
		for _, m := range info.PV {
			sb.WriteByte(' ')
			sb.WriteString(m.String())
		}
	}
	p.writeLine(sb.String())
}

func (p *Protocol) writeLine(s string) {
	p.outMu.Lock()
	defer p.outMu.Unlock()
	p.out.WriteString(s)
	p.out.WriteByte('\n')
	p.out.Flush()
}
