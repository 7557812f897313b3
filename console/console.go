// Package console reads movie control commands from an interactive prompt.
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/matt-g-everett/ledreel/stream"
)

var ErrUsage = errors.New("usage")

// Exec runs a command and reports the resulting status.
type Exec func(cmd stream.Command) (stream.Status, error)

const help = `commands:
  play | pause | stop | status
  seek N
  loop on|off
  add TEXTURE [SECONDS]
  insert TEXTURE N
  remove N
  frame N TEXTURE
  sound N [NAME]
  duration N SECONDS
  quit`

// Parse turns one console line into a Command.
func Parse(line string) (stream.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return stream.Command{}, fmt.Errorf("%w: empty command", ErrUsage)
	}

	args := fields[1:]
	switch verb := strings.ToLower(fields[0]); verb {
	case "play", "pause", "stop", "status":
		if len(args) != 0 {
			return stream.Command{}, usage(verb)
		}
		return stream.Command{Type: verb}, nil
	case "seek", "remove":
		if len(args) != 1 {
			return stream.Command{}, usage(verb + " N")
		}
		n, err := index(args[0])
		if err != nil {
			return stream.Command{}, err
		}
		return stream.Command{Type: verb, Index: n}, nil
	case "loop":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return stream.Command{}, usage("loop on|off")
		}
		return stream.Command{Type: stream.CommandLoop, Loop: args[0] == "on"}, nil
	case "add":
		if len(args) < 1 || len(args) > 2 {
			return stream.Command{}, usage("add TEXTURE [SECONDS]")
		}
		cmd := stream.Command{Type: stream.CommandAdd, Texture: args[0]}
		if len(args) == 2 {
			d, err := seconds(args[1])
			if err != nil {
				return stream.Command{}, err
			}
			cmd.Duration = d
		}
		return cmd, nil
	case "insert":
		if len(args) != 2 {
			return stream.Command{}, usage("insert TEXTURE N")
		}
		n, err := index(args[1])
		if err != nil {
			return stream.Command{}, err
		}
		return stream.Command{Type: stream.CommandInsert, Texture: args[0], Index: n}, nil
	case "frame":
		if len(args) != 2 {
			return stream.Command{}, usage("frame N TEXTURE")
		}
		n, err := index(args[0])
		if err != nil {
			return stream.Command{}, err
		}
		return stream.Command{Type: stream.CommandSetFrame, Index: n, Texture: args[1]}, nil
	case "sound":
		if len(args) < 1 || len(args) > 2 {
			return stream.Command{}, usage("sound N [NAME]")
		}
		n, err := index(args[0])
		if err != nil {
			return stream.Command{}, err
		}
		cmd := stream.Command{Type: stream.CommandSetSound, Index: n}
		if len(args) == 2 {
			cmd.Sound = args[1]
		}
		return cmd, nil
	case "duration":
		if len(args) != 2 {
			return stream.Command{}, usage("duration N SECONDS")
		}
		n, err := index(args[0])
		if err != nil {
			return stream.Command{}, err
		}
		d, err := seconds(args[1])
		if err != nil {
			return stream.Command{}, err
		}
		return stream.Command{Type: stream.CommandSetDuration, Index: n, Duration: d}, nil
	default:
		return stream.Command{}, fmt.Errorf("%w: unknown command %q", ErrUsage, verb)
	}
}

// NewCompleter completes verbs and, where a texture or sound is expected,
// the names known to lib.
func NewCompleter(lib *stream.Library) *readline.PrefixCompleter {
	textures := readline.PcItemDynamic(func(string) []string { return lib.TextureNames() })
	sounds := readline.PcItemDynamic(func(string) []string { return lib.SoundNames() })

	return readline.NewPrefixCompleter(
		readline.PcItem("play"),
		readline.PcItem("pause"),
		readline.PcItem("stop"),
		readline.PcItem("status"),
		readline.PcItem("seek"),
		readline.PcItem("loop", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("add", textures),
		readline.PcItem("insert", textures),
		readline.PcItem("remove"),
		readline.PcItem("frame"),
		readline.PcItem("sound"),
		readline.PcItem("duration"),
		readline.PcItem("sounds", sounds),
		readline.PcItem("textures", textures),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Run reads commands from rl until EOF or quit, printing results to out.
func Run(rl *readline.Instance, lib *stream.Library, exec Exec, out io.Writer) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := Handle(line, lib, exec, out); quit {
			return nil
		}
	}
}

// Handle runs one console line and reports whether the console should exit.
func Handle(line string, lib *stream.Library, exec Exec, out io.Writer) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(out, help)
		return false
	case "textures":
		fmt.Fprintln(out, strings.Join(lib.TextureNames(), " "))
		return false
	case "sounds":
		fmt.Fprintln(out, strings.Join(lib.SoundNames(), " "))
		return false
	}

	cmd, err := Parse(line)
	if err != nil {
		fmt.Fprintf(out, " [!] %v\n", err)
		return false
	}
	st, err := exec(cmd)
	if err != nil {
		fmt.Fprintf(out, " [!] %v\n", err)
	}
	fmt.Fprintf(out, "frame %d/%d  elapsed %.3fs  total %.3fs  playing=%v loop=%v\n",
		st.CurrentFrame, st.NumFrames, st.Elapsed, st.TotalDuration, st.Playing, st.Loop)
	return false
}

func usage(form string) error {
	return fmt.Errorf("%w: %s", ErrUsage, form)
}

func index(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrUsage, s)
	}
	return n, nil
}

func seconds(s string) (float64, error) {
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad duration %q", ErrUsage, s)
	}
	return d, nil
}
