package history

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lox/blackjack/internal/fileutil"
)

// Encode writes the session to w as TOML, one [[rounds]] table per round.
func Encode(w io.Writer, session *Session) error {
	if session == nil {
		return fmt.Errorf("history: session is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(session)
}

// Decode reads a TOML session and validates every round in it.
func Decode(r io.Reader) (*Session, error) {
	var session Session
	md, err := toml.NewDecoder(r).Decode(&session)
	if err != nil {
		return nil, fmt.Errorf("history: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("history: unknown key %q", undecoded[0].String())
	}

	for _, round := range session.Rounds {
		if err := round.Validate(); err != nil {
			return nil, fmt.Errorf("history: %w", err)
		}
	}
	return &session, nil
}

// Save writes the session to path, replacing any existing file atomically.
func Save(path string, session *Session) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, session)
	})
}

// Load reads a session previously written by Save.
func Load(path string) (*Session, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}
