package banking

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/quintans/faults"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// decodeOperation decodes one JSON object into the operation named by its "op" field.
func decodeOperation(line []byte) (Operation, error) {
	var identifier struct {
		Op OpType `json:"op"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify operation: %w", err)
	}

	var op Operation
	var err error
	switch identifier.Op {
	case OpPerson:
		var v Declare
		err = strictUnmarshal(line, &v)
		op = v
	case OpOpen:
		var v Open
		err = strictUnmarshal(line, &v)
		op = v
	case OpDeposit:
		var v Deposit
		err = strictUnmarshal(line, &v)
		op = v
	case OpWithdraw:
		var v Withdraw
		err = strictUnmarshal(line, &v)
		op = v
	case OpTransfer:
		var v Transfer
		err = strictUnmarshal(line, &v)
		op = v
	case "":
		return nil, fmt.Errorf("%w: missing \"op\"", ErrInvalidStep)
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidStep, identifier.Op)
	}
	if err != nil {
		return nil, err
	}
	if err := op.Validate(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidStep, op.What(), err)
	}
	return op, nil
}

// strictUnmarshal decodes data into v rejecting unknown fields, so that a
// typo in a script does not silently become a zero amount.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// DecodeScript decodes a script from a stream of JSONL data, one operation per line.
// Empty lines are skipped but still counted, so that step lines match the input.
func DecodeScript(r io.Reader) (*Script, error) {
	s := &Script{}
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		op, err := decodeOperation(lineBytes)
		if err != nil {
			return nil, faults.Errorf("line %d: %w", line, err)
		}
		s.Steps = append(s.Steps, Step{Line: line, Operation: op})
	}
	if err := scanner.Err(); err != nil {
		return nil, faults.Errorf("error reading from input: %w", err)
	}
	return s, nil
}

// EncodeOperation marshals a single operation to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeOperation(w io.Writer, op Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return faults.Errorf("failed to marshal %s operation: %w", op.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return faults.Errorf("failed to write operation: %w", err)
	}
	return nil
}

// EncodeScript writes every step of s to w in JSONL format.
func EncodeScript(w io.Writer, s *Script) error {
	for _, step := range s.Steps {
		if err := EncodeOperation(w, step.Operation); err != nil {
			return err
		}
	}
	return nil
}
