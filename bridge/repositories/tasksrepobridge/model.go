package tasksrepobridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/jrazmi/taskd/infrastructure/web"
)

// Task is the wire form of a task.
type Task struct {
	ID          string `json:"_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// formContentType is the media type of urlencoded form bodies.
const formContentType = "application/x-www-form-urlencoded"

// taskInput is a decoded create or update body. Values are kept as sent so
// the entity rules decide what is acceptable, wrong JSON types included.
type taskInput struct {
	fields map[string]any
}

// Decode implements web.Decoder.
func (in *taskInput) Decode(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if err := validateBody(doc); err != nil {
		return err
	}

	// validateBody guarantees an object.
	in.fields = doc.(map[string]any)
	return nil
}

// value returns the field as sent. A JSON null counts as absent.
func (in taskInput) value(field string) (any, bool) {
	v, ok := in.fields[field]
	if v == nil {
		return nil, false
	}
	return v, ok
}

// text returns the field when it was sent. A value of the wrong type reads as
// "" so the entity rejects it.
func (in taskInput) text(field string) (string, bool) {
	v, ok := in.value(field)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

// decodeTaskInput reads a JSON or urlencoded form body. A missing body reads
// as {}.
func decodeTaskInput(r *http.Request) (taskInput, error) {
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && mediaType == formContentType {
		return decodeForm(r)
	}

	var in taskInput
	if err := web.Decode(r, &in); err != nil {
		if errors.Is(err, web.ErrEmptyBody) {
			return taskInput{fields: map[string]any{}}, nil
		}
		return taskInput{}, err
	}
	return in, nil
}

// decodeForm reads a urlencoded body. Repeated keys keep their first value.
func decodeForm(r *http.Request) (taskInput, error) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, web.MaxBodyBytes)
	}
	if err := r.ParseForm(); err != nil {
		return taskInput{}, fmt.Errorf("malformed form body: %w", err)
	}

	fields := make(map[string]any, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}
	return taskInput{fields: fields}, nil
}
