// Package interactive provides the interactive command-line console for
// vacsync.
package interactive

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/vacsync/vacsync-go/pkg/codec"
	"github.com/vacsync/vacsync-go/pkg/command"
	"github.com/vacsync/vacsync-go/pkg/property"
	"github.com/vacsync/vacsync-go/pkg/session"
	"github.com/vacsync/vacsync-go/pkg/transport"
)

// Console handles interactive mode for vacsync.
type Console struct {
	sess *session.Session
	sim  *transport.Simulator
	rl   *readline.Instance
	out  io.Writer
}

// New creates a console bound to a connected session and the simulator
// behind it.
func New(sess *session.Session, sim *transport.Simulator) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vacuum> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{sess: sess, sim: sim, rl: rl, out: rl.Stdout()}, nil
}

// Stdout returns a writer that coordinates with the readline input.
func (c *Console) Stdout() io.Writer { return c.rl.Stdout() }

// Stderr returns a writer that coordinates with the readline input.
func (c *Console) Stderr() io.Writer { return c.rl.Stderr() }

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if quit := c.Exec(ctx, line); quit {
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Exec runs a single command line. It reports whether the console should
// exit.
func (c *Console) Exec(ctx context.Context, line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	orch := c.sess.Commands()

	var err error
	switch cmd {
	case "help", "?":
		c.printHelp()
	case "status", "s":
		c.cmdStatus()
	case "start":
		err = orch.Start(ctx)
	case "pause":
		err = orch.Pause(ctx)
	case "stop":
		err = orch.Stop(ctx)
	case "dock", "home":
		err = orch.ReturnToBase(ctx)
	case "locate":
		err = orch.Locate(ctx)
	case "map":
		err = orch.FastMapping(ctx)
	case "goto":
		err = c.cmdGoTo(ctx, args)
	case "zone":
		err = c.cmdZone(ctx, args)
	case "segments", "rooms":
		err = c.cmdSegments(ctx, args)
	case "wash":
		err = orch.StartWashing(ctx)
	case "dry":
		err = orch.StartDrying(ctx)
	case "empty":
		err = orch.StartAutoEmpty(ctx)
	case "clear":
		err = orch.ClearWarning(ctx)
	case "set":
		err = c.cmdSet(ctx, args)
	case "settings":
		c.cmdSettings()
	case "reset":
		err = c.cmdReset(ctx, args)
	case "refresh":
		err = c.sess.Refresh(ctx)
	case "sim":
		err = c.cmdSim(args)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
vacsync Commands:
  Cleaning:
    start | pause | stop     - Control the current job
    dock                     - Return to the base
    locate                   - Play the locate sound
    map                      - Start fast mapping
    goto <x> <y>             - Drive to a map point
    zone <x1> <y1> <x2> <y2> [repeats]
    segments <id>... [-r repeats]

  Base station:
    wash | dry | empty       - Mop washing, drying, dust collection
    clear                    - Clear the current warning

  Settings:
    settings                 - List supported settings
    set <name> <value>       - Change a setting
    reset <consumable>       - Reset a consumable counter

  Session:
    status                   - Show device status
    refresh                  - Poll the device now
    sim <property> <value>   - Change the simulated device and push it
    quit                     - Exit`)
}

func (c *Console) cmdStatus() {
	v := c.sess.View()
	if p := c.sess.Profile(); p != nil {
		fmt.Fprintf(c.out, "Device:    %s %s (%s)\n", p.Name, p.Model, c.sess.DeviceID())
	}
	fmt.Fprintf(c.out, "Available: %t\n", c.sess.Available())
	fmt.Fprintf(c.out, "State:     %s\n", v.State())
	fmt.Fprintf(c.out, "Status:    %s (task %s)\n", v.Status(), v.TaskStatus())
	fmt.Fprintf(c.out, "Battery:   %d%% (%s)\n", v.Battery(), v.ChargingStatus())
	fmt.Fprintf(c.out, "Suction:   %s\n", v.SuctionLevel())
	fmt.Fprintf(c.out, "Cleaned:   %d m2 in %d min\n", v.CleanedArea(), v.CleaningTime())
	if v.HasError() || v.HasWarning() {
		fmt.Fprintf(c.out, "Error:     %s\n", v.ErrorCode())
	}
	if t, ok := v.GoTo(); ok {
		fmt.Fprintf(c.out, "Go-to:     (%d, %d) %s\n", t.X, t.Y, t.Phase)
	}
	stats := c.sess.Ledger().Stats()
	fmt.Fprintf(c.out, "Writes:    %d pending, %d confirmed, %d discarded, %d restored\n",
		c.sess.Ledger().Len(), stats.Confirmed, stats.Discarded, stats.Restored)
}

func (c *Console) cmdGoTo(ctx context.Context, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	if len(nums) != 2 {
		return fmt.Errorf("usage: goto <x> <y>")
	}
	return c.sess.Commands().GoTo(ctx, nums[0], nums[1])
}

func (c *Console) cmdZone(ctx context.Context, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	if len(nums) != 4 && len(nums) != 5 {
		return fmt.Errorf("usage: zone <x1> <y1> <x2> <y2> [repeats]")
	}
	repeats := 1
	if len(nums) == 5 {
		repeats = nums[4]
	}
	zone := codec.Zone{X1: nums[0], Y1: nums[1], X2: nums[2], Y2: nums[3]}
	return c.sess.Commands().CleanZone(ctx, []codec.Zone{zone}, repeats)
}

func (c *Console) cmdSegments(ctx context.Context, args []string) error {
	repeats := 1
	if i := slices.Index(args, "-r"); i >= 0 {
		if i+1 >= len(args) {
			return fmt.Errorf("missing value for -r")
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			return fmt.Errorf("invalid repeats %q", args[i+1])
		}
		repeats = n
		args = append(args[:i:i], args[i+2:]...)
	}
	ids, err := parseInts(args)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("usage: segments <id>... [-r repeats]")
	}
	return c.sess.Commands().CleanSegments(ctx, ids, repeats)
}

func (c *Console) cmdSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: set <name> <value>")
	}
	s, ok := command.ParseSetting(args[0])
	if !ok {
		return fmt.Errorf("unknown setting %q", args[0])
	}
	return c.sess.Commands().SetSetting(ctx, s, parseValue(strings.Join(args[1:], " ")))
}

func (c *Console) cmdSettings() {
	orch := c.sess.Commands()
	for _, s := range command.Settings() {
		if orch.Supported(s) {
			fmt.Fprintf(c.out, "  %s\n", s)
		}
	}
}

func (c *Console) cmdReset(ctx context.Context, args []string) error {
	if len(args) != 1 {
		var names []string
		for _, k := range c.sess.Commands().Consumables() {
			names = append(names, k.String())
		}
		return fmt.Errorf("usage: reset <%s>", strings.Join(names, "|"))
	}
	k, ok := command.ParseConsumable(args[0])
	if !ok {
		return fmt.Errorf("unknown consumable %q", args[0])
	}
	return c.sess.Commands().ResetConsumable(ctx, k)
}

func (c *Console) cmdSim(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: sim <property> <value>")
	}
	id, ok := property.ParseID(args[0])
	if !ok {
		return fmt.Errorf("unknown property %q", args[0])
	}
	c.sim.Push(map[property.ID]any{id: parseValue(strings.Join(args[1:], " "))})
	return nil
}

// parseValue converts console input to an int64, a bool or a string.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	switch strings.ToLower(s) {
	case "true", "on":
		return true
	case "false", "off":
		return false
	}
	return s
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out = append(out, n)
	}
	return out, nil
}
