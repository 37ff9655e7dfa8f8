// Package intake reads answer files for batch scoring.
package intake

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/sourcegraph/conc/iter"

	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/scoring"
)

// Stdin is the path that reads answers from standard input.
const Stdin = "-"

// Input is one decoded answer file with its scores.
type Input struct {
	Path      string
	Model     scoring.ModelID
	Responses questionnaire.Responses
	Scores    *scoring.Scores
}

// envelope is the self-describing file form. A bare object keyed by question
// id is accepted too and is scored with the default model.
type envelope struct {
	Model     string                  `json:"model"`
	Responses questionnaire.Responses `json:"responses"`
}

// Decode parses one answer document.
func Decode(data []byte, defaultModel scoring.ModelID) (scoring.ModelID, questionnaire.Responses, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty answer document")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", nil, fmt.Errorf("answers must be a JSON object: %w", err)
	}

	if _, ok := probe["responses"]; ok {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return "", nil, err
		}
		model := defaultModel
		if env.Model != "" {
			model = scoring.ModelID(env.Model)
		}
		if env.Responses == nil {
			env.Responses = questionnaire.Responses{}
		}
		return model, env.Responses, nil
	}

	var r questionnaire.Responses
	if err := json.Unmarshal(data, &r); err != nil {
		return "", nil, err
	}
	return defaultModel, r, nil
}

// ErrStdinRepeated is returned when Stdin is listed more than once; the
// stream can only be read once.
var ErrStdinRepeated = errors.New(`stdin ("-") can only be given once`)

// Load reads and scores every path concurrently. Results keep the order of
// paths. Failures of all files are joined into the returned error.
func Load(paths []string, defaultModel scoring.ModelID, stdin io.Reader) ([]Input, error) {
	if i := slices.Index(paths, Stdin); i >= 0 && slices.Contains(paths[i+1:], Stdin) {
		return nil, ErrStdinRepeated
	}
	mapper := iter.Mapper[string, Input]{MaxGoroutines: runtime.NumCPU()}
	inputs, err := mapper.MapErr(paths, func(path *string) (Input, error) {
		data, err := read(*path, stdin)
		if err != nil {
			return Input{}, err
		}
		model, responses, err := Decode(data, defaultModel)
		if err != nil {
			return Input{}, fmt.Errorf("%s: %w", *path, err)
		}
		m, err := scoring.ModelFor(model)
		if err != nil {
			return Input{}, fmt.Errorf("%s: %w", *path, err)
		}
		return Input{
			Path:      *path,
			Model:     model,
			Responses: responses,
			Scores:    m.Score(responses),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return inputs, nil
}

func read(path string, stdin io.Reader) ([]byte, error) {
	if path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return data, nil
}
