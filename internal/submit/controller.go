// Package submit owns the upload-configure-submit workflow: the selected
// file, its configuration and the lifecycle of one submission to the parsing
// service.
package submit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/docparse/docparse/internal/client"
	"github.com/docparse/docparse/internal/document"
)

// ErrInFlight is returned when Submit is called while a submission is
// already running. There is no queuing; the caller retries after the
// current submission resolves.
var ErrInFlight = errors.New("submission already in flight")

// State is the submission lifecycle. Exactly one state is active at a time
// and transitions happen only through Submit and its resolution.
type State int

const (
	StateIdle State = iota
	StateProcessing
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Upload is the selected file: a name and its bytes.
type Upload struct {
	Name string
	Data []byte
}

// Controller tracks the selected file, the chosen options and the current
// submission state. Methods are safe for use from the UI goroutine plus the
// one background goroutine running Submit.
type Controller struct {
	client *client.Client
	logger *slog.Logger

	mu            sync.Mutex
	file          *Upload
	displayName   string
	fileType      document.FileType
	loadingMethod string
	parsingOption string
	state         State
	result        *document.ParsedDocument
	status        string
	inFlight      bool
}

// New creates a controller with the default configuration: no file, "auto"
// loading method and "all_text" parsing option.
func New(c *client.Client, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		client:        c,
		logger:        logger,
		fileType:      document.FileTypePDF,
		loadingMethod: document.MethodAuto,
		parsingOption: document.ParseAllText,
	}
}

// SelectFile replaces the current upload. The file type is derived from the
// extension; a change of file type resets the loading method to "auto". Any
// prior result and status are cleared.
func (c *Controller) SelectFile(name string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ft := document.DetectFileType(name)
	if ext := strings.ToLower(filepath.Ext(name)); ext != ".pdf" && ext != ".md" {
		c.logger.Warn("unrecognized file extension, treating as pdf", "filename", name)
	}

	if ft != c.fileType {
		c.loadingMethod = document.MethodAuto
	}
	c.fileType = ft
	c.file = &Upload{Name: name, Data: data}
	c.displayName = document.DisplayName(name)
	c.result = nil
	c.status = ""
	c.state = StateIdle

	c.logger.Debug("file selected", "filename", name, "file_type", string(ft))
}

// SetLoadingMethod records the loading method. Values are not validated; the
// presentation layer offers only the subset valid for the current file type.
func (c *Controller) SetLoadingMethod(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadingMethod = value
}

// SetParsingOption records the parsing option.
func (c *Controller) SetParsingOption(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parsingOption = value
}

// Submit issues one parse request. Preconditions are checked first: a file
// must be selected and both options non-empty; on violation the status is set
// to a validation message and no request is made. ErrInFlight is returned if
// a submission is already running. All other outcomes are recorded in the
// controller state rather than returned.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrInFlight
	}

	if c.file == nil || c.loadingMethod == "" || c.parsingOption == "" {
		c.state = StateFailed
		c.status = "Error: please select a file and parsing options"
		c.mu.Unlock()
		return nil
	}

	c.inFlight = true
	c.state = StateProcessing
	c.result = nil
	c.status = fmt.Sprintf("Parsing %s...", c.file.Name)

	req := client.ParseRequest{
		Filename:      c.file.Name,
		File:          bytes.NewReader(c.file.Data),
		LoadingMethod: c.loadingMethod,
		ParsingOption: c.parsingOption,
		FileType:      c.fileType,
	}
	c.mu.Unlock()

	// The in-flight flag must be released on every exit path, including
	// panics out of the client.
	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	doc, err := c.client.Parse(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateFailed
		c.status = "Error: " + err.Error()
		c.logger.Error("submission failed", "filename", req.Filename, "error", err)
		return nil
	}

	c.state = StateSucceeded
	c.result = doc
	c.status = fmt.Sprintf("Successfully parsed %s", req.Filename)
	c.logger.Info("submission succeeded",
		"filename", req.Filename,
		"loading_method", req.LoadingMethod,
		"parsing_option", req.ParsingOption,
		"total_pages", doc.Metadata.TotalPages,
	)
	return nil
}

// State returns the current submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Status returns the latest status banner text. Failures carry an "Error"
// prefix; that prefix is the error/success discriminator.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Result returns the parsed document of the last successful submission, or
// nil.
func (c *Controller) Result() *document.ParsedDocument {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// File returns the currently selected upload, or nil.
func (c *Controller) File() *Upload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.file
}

// DisplayName returns the selected filename without its extension.
func (c *Controller) DisplayName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayName
}

// FileType returns the detected type of the selected file.
func (c *Controller) FileType() document.FileType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fileType
}

// LoadingMethod returns the selected loading method.
func (c *Controller) LoadingMethod() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadingMethod
}

// ParsingOption returns the selected parsing option.
func (c *Controller) ParsingOption() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.parsingOption
}

// InFlight reports whether a submission is currently running.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}
