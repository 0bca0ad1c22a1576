package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opsline/switchboard/internal/errors"
)

// snapshotDoc is the YAML document shape for a pipeline snapshot. It is
// deliberately separate from State so the file format can stay stable
// while the in-memory types move.
type snapshotDoc struct {
	Scenario string      `yaml:"scenario"`
	Contact  string      `yaml:"contact"`
	Channel  string      `yaml:"channel"`
	Phase    string      `yaml:"phase"`
	Records  []recordDoc `yaml:"records"`
}

type recordDoc struct {
	Role      string       `yaml:"role"`
	Status    string       `yaml:"status"`
	ElapsedMS int64        `yaml:"elapsed_ms"`
	Decision  *decisionDoc `yaml:"decision"`
}

type decisionDoc struct {
	Type       string   `yaml:"type"`
	Intent     string   `yaml:"intent"`
	Summary    string   `yaml:"summary"`
	Confidence float64  `yaml:"confidence"`
	Risk       string   `yaml:"risk"`
	Reasoning  []string `yaml:"reasoning"`
}

// LoadSnapshot reads and parses a pipeline snapshot from path.
func LoadSnapshot(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewSnapshotError("snapshot file not found", errors.ErrSnapshotNotFound).WithPath(path)
		}
		return nil, errors.NewSnapshotError("failed to read snapshot", err).WithPath(path)
	}

	state, err := ParseSnapshot(data)
	if err != nil {
		var serr *errors.SnapshotError
		if errors.As(err, &serr) {
			serr.WithPath(path)
		}
		return nil, err
	}
	return state, nil
}

// ParseSnapshot decodes a YAML snapshot into pipeline state. Decoding is
// strict: unknown keys are rejected so typos in hand-edited files surface
// as errors instead of silently dropped data. Confidence scores outside
// [0, 1] are clamped rather than rejected.
func ParseSnapshot(data []byte) (*State, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc snapshotDoc
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.NewSnapshotError("empty document", errors.ErrSnapshotInvalid)
		}
		return nil, errors.NewSnapshotError("failed to decode snapshot", err)
	}

	phase := PhaseIdle
	if doc.Phase != "" {
		phase = Phase(doc.Phase)
		if !phase.Valid() {
			return nil, errors.NewSnapshotError(fmt.Sprintf("unknown phase %q", doc.Phase), errors.ErrSnapshotInvalid).WithField("phase")
		}
	}

	state := NewState()
	state.Scenario = doc.Scenario
	state.Contact = doc.Contact
	state.Channel = doc.Channel
	state.Phase = phase

	seen := make(map[Role]bool, len(doc.Records))
	for i, rd := range doc.Records {
		rec, err := buildRecord(i, rd, seen)
		if err != nil {
			return nil, err
		}
		state.Records = append(state.Records, rec)
	}

	return state, nil
}

func buildRecord(i int, rd recordDoc, seen map[Role]bool) (Record, error) {
	role := Role(rd.Role)
	if !role.Valid() {
		return Record{}, errors.NewSnapshotError(fmt.Sprintf("unknown role %q", rd.Role), errors.ErrSnapshotInvalid).
			WithField(fmt.Sprintf("records[%d].role", i))
	}
	if seen[role] {
		return Record{}, errors.NewSnapshotError(fmt.Sprintf("duplicate record for role %q", rd.Role), errors.ErrSnapshotInvalid).
			WithField(fmt.Sprintf("records[%d].role", i))
	}
	seen[role] = true

	status := StatusPending
	if rd.Status != "" {
		status = Status(rd.Status)
		if !status.Valid() {
			return Record{}, errors.NewSnapshotError(fmt.Sprintf("unknown status %q", rd.Status), errors.ErrSnapshotInvalid).
				WithField(fmt.Sprintf("records[%d].status", i))
		}
	}

	if rd.ElapsedMS < 0 {
		return Record{}, errors.NewSnapshotError("elapsed_ms must not be negative", errors.ErrSnapshotInvalid).
			WithField(fmt.Sprintf("records[%d].elapsed_ms", i))
	}

	rec := Record{
		Role:      role,
		Status:    status,
		ElapsedMS: rd.ElapsedMS,
	}

	if rd.Decision != nil {
		risk := RiskNone
		if rd.Decision.Risk != "" {
			risk = RiskTier(rd.Decision.Risk)
			if !risk.Valid() {
				return Record{}, errors.NewSnapshotError(fmt.Sprintf("unknown risk tier %q", rd.Decision.Risk), errors.ErrSnapshotInvalid).
					WithField(fmt.Sprintf("records[%d].decision.risk", i))
			}
		}
		rec.Decision = &Decision{
			Type:       rd.Decision.Type,
			Intent:     rd.Decision.Intent,
			Summary:    rd.Decision.Summary,
			Confidence: ClampScore(rd.Decision.Confidence),
			Risk:       risk,
			Reasoning:  rd.Decision.Reasoning,
		}
	}

	return rec, nil
}
