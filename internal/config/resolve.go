package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arctis-tools/chatmixctl/internal/messages"
)

// ResolveOptions carries the inputs to Resolve.
type ResolveOptions struct {
	Flags       Flags
	Interactive bool
	// DefaultsPath overrides the defaults file location; empty means
	// DefaultsFilePath(). Used by tests.
	DefaultsPath string
	In           io.Reader
	Out          io.Writer
}

// Resolve merges defaults, the optional defaults file, flags, and (when
// interactive) prompts into one validated Install. The result is frozen:
// nothing mutates it after Resolve returns.
//
// In non-interactive mode every parameter must already be resolvable; a
// missing or invalid binary path and an invalid scope are misuse. No
// prompting occurs.
func Resolve(opts ResolveOptions) (*Install, error) {
	cfg := Install{
		Scope:         ScopeUser,
		InstallUdev:   true,
		EnableService: true,
		EnableLinger:  false,
		Interactive:   opts.Interactive,
	}

	if err := applyDefaultsFile(&cfg, opts.DefaultsPath); err != nil {
		return nil, err
	}
	if err := applyFlags(&cfg, opts.Flags); err != nil {
		return nil, err
	}

	if !opts.Interactive {
		if err := ValidateBinary(cfg.BinaryPath); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := promptAll(&cfg, ensureReader(opts.In), opts.Out); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaultsFile(cfg *Install, path string) error {
	if path == "" {
		resolved, err := DefaultsFilePath()
		if err != nil {
			// No resolvable home directory; user-scope installs will fail
			// later with a clearer error, so skip the defaults file here.
			return nil
		}
		path = resolved
	}
	defaults, err := loadDefaultsFile(path)
	if err != nil {
		return err
	}
	if defaults.Binary != "" {
		cfg.BinaryPath = defaults.Binary
	}
	if defaults.Mode != "" {
		scope, err := ParseScope(defaults.Mode)
		if err != nil {
			return err
		}
		cfg.Scope = scope
	}
	if defaults.Udev != nil {
		cfg.InstallUdev = *defaults.Udev
	}
	if defaults.EnableService != nil {
		cfg.EnableService = *defaults.EnableService
	}
	if defaults.EnableLinger != nil {
		cfg.EnableLinger = *defaults.EnableLinger
	}
	return nil
}

func applyFlags(cfg *Install, flags Flags) error {
	if flags.Binary != "" {
		cfg.BinaryPath = flags.Binary
	}
	if flags.Mode != "" {
		scope, err := ParseScope(flags.Mode)
		if err != nil {
			return err
		}
		cfg.Scope = scope
	}
	if flags.Udev != "" {
		value, err := ParseYesNo(flags.Udev, "--udev")
		if err != nil {
			return err
		}
		cfg.InstallUdev = value
	}
	if flags.EnableService != "" {
		value, err := ParseYesNo(flags.EnableService, "--enable-service")
		if err != nil {
			return err
		}
		cfg.EnableService = value
	}
	if flags.EnableLinger != "" {
		value, err := ParseYesNo(flags.EnableLinger, "--enable-linger")
		if err != nil {
			return err
		}
		cfg.EnableLinger = value
	}
	return nil
}

// promptAll walks the fixed prompt order: binary path, scope, udev, service,
// and linger (user scope only). Each prompt is seeded with the currently-held
// value and re-prompts with guidance on invalid input.
func promptAll(cfg *Install, in *bufio.Reader, out io.Writer) error {
	if err := promptBinary(cfg, in, out); err != nil {
		return err
	}
	if err := promptScope(cfg, in, out); err != nil {
		return err
	}
	udev, err := promptYesNo(in, out, messages.PromptUdev, cfg.InstallUdev)
	if err != nil {
		return err
	}
	cfg.InstallUdev = udev
	service, err := promptYesNo(in, out, messages.PromptEnableService, cfg.EnableService)
	if err != nil {
		return err
	}
	cfg.EnableService = service
	if cfg.Scope == ScopeUser {
		linger, err := promptYesNo(in, out, messages.PromptEnableLinger, cfg.EnableLinger)
		if err != nil {
			return err
		}
		cfg.EnableLinger = linger
	}
	return nil
}

func promptBinary(cfg *Install, in *bufio.Reader, out io.Writer) error {
	for {
		if _, err := fmt.Fprintf(out, messages.PromptBinaryPathFmt, messages.PromptBinaryPath, cfg.BinaryPath); err != nil {
			return err
		}
		line, err := readLine(in)
		if err != nil {
			return err
		}
		candidate := line
		if candidate == "" {
			candidate = cfg.BinaryPath
		}
		if err := ValidateBinary(candidate); err != nil {
			if _, err := fmt.Fprintln(out, messages.PromptRetryBinary); err != nil {
				return err
			}
			continue
		}
		cfg.BinaryPath = candidate
		return nil
	}
}

func promptScope(cfg *Install, in *bufio.Reader, out io.Writer) error {
	for {
		if _, err := fmt.Fprintf(out, messages.PromptScopeFmt, cfg.Scope); err != nil {
			return err
		}
		line, err := readLine(in)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		scope, err := ParseScope(line)
		if err != nil {
			if _, err := fmt.Fprintln(out, messages.PromptRetryScope); err != nil {
				return err
			}
			continue
		}
		cfg.Scope = scope
		return nil
	}
}

// PromptYesNo asks a yes/no question, defaulting to defaultValue on empty
// input. Answers are case-insensitive and accept single-letter or full-word
// forms; any other input re-prompts with guidance. The input stream ending is
// ErrInputClosed, never a silent default.
func PromptYesNo(in io.Reader, out io.Writer, prompt string, defaultValue bool) (bool, error) {
	return promptYesNo(ensureReader(in), out, prompt, defaultValue)
}

func promptYesNo(in *bufio.Reader, out io.Writer, prompt string, defaultValue bool) (bool, error) {
	format := messages.PromptNoDefaultFmt
	if defaultValue {
		format = messages.PromptYesDefaultFmt
	}
	for {
		if _, err := fmt.Fprintf(out, format, prompt); err != nil {
			return false, err
		}
		line, err := readLine(in)
		if err != nil {
			return false, err
		}
		if line == "" {
			return defaultValue, nil
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}

// readLine reads one trimmed line. A closed stream with no pending input is
// ErrInputClosed; a final unterminated line is still delivered.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	trimmed := strings.TrimSpace(line)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if trimmed == "" {
			return "", ErrInputClosed
		}
	}
	return trimmed, nil
}

func ensureReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
