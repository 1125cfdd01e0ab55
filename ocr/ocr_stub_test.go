//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNew_NotEnabled(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}
}

func TestNewEngine_NotEnabled(t *testing.T) {
	if _, err := NewEngine(); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("NewEngine() error = %v, want ErrOCRNotEnabled", err)
	}
	if _, err := NewEngineWithConfig(DefaultEngineConfig()); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("NewEngineWithConfig() error = %v, want ErrOCRNotEnabled", err)
	}
}

func TestStubClient_NilSafeClose(t *testing.T) {
	var c *Client
	if err := c.Close(); err != nil {
		t.Errorf("Close() on nil client = %v, want nil", err)
	}
}

func TestStubClient_Operations(t *testing.T) {
	c := &Client{}

	if err := c.SetLanguages("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguages error = %v, want ErrOCRNotEnabled", err)
	}
	if _, err := c.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage error = %v, want ErrOCRNotEnabled", err)
	}
	if _, _, err := c.RecognizeBlocks(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeBlocks error = %v, want ErrOCRNotEnabled", err)
	}
}

func TestStubEngine(t *testing.T) {
	e := &Engine{}

	if e.Name() != "ocr_extract" {
		t.Errorf("Name() = %q, want %q", e.Name(), "ocr_extract")
	}
	if e.Params() != nil {
		t.Errorf("Params() = %v, want nil", e.Params())
	}
	if _, err := e.Open("scan.pdf"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Open error = %v, want ErrOCRNotEnabled", err)
	}
}
