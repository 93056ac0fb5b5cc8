package reportpipe

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLoadXML_FlattensLeavesAndAttributes(t *testing.T) {
	// WHAT: XML loading is schema-less: every text leaf and attribute
	// value survives in encounter order, structure does not.
	engine := testEngine(t)
	payload := []byte(`<?xml version="1.0"?>
<diagnostic tool="VCDS">
  <vehicle vin="WVWZZZ1JZXW000001"/>
  <fault code="17158">Databus - Received Error Message</fault>
  <fault code="P0300">Random/Multiple Cylinder Misfire Detected</fault>
</diagnostic>`)

	text, err := engine.Load(payload, FormatXML)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, want := range []string{"VCDS", "WVWZZZ1JZXW000001", "17158", "Databus - Received Error Message", "P0300"} {
		if !strings.Contains(text, want) {
			t.Errorf("flattened text missing %q: %q", want, text)
		}
	}
	// Attribute before its element's children: encounter order.
	if strings.Index(text, "17158") > strings.Index(text, "Databus") {
		t.Errorf("encounter order lost: %q", text)
	}
}

func TestParse_XMLEndToEnd(t *testing.T) {
	// WHAT: codes inside XML attributes and leaves reach the extractor.
	engine := testEngine(t)
	payload := []byte(`<scan><dtc id="P0300"><desc>misfire failure</desc></dtc></scan>`)
	res := engine.Parse(context.Background(), payload, FormatXML)

	if !res.Success {
		t.Fatalf("Parse: %s", res.Error)
	}
	if len(res.Codes) != 1 || res.Codes[0].Code != "P0300" {
		t.Fatalf("codes = %+v", res.Codes)
	}
}

func TestLoadXML_DecodeError(t *testing.T) {
	// WHAT: a payload that is not XML at all is a decode failure.
	engine := testEngine(t)
	_, err := engine.Load([]byte("not xml in any way <<<"), FormatXML)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}

func TestLoadXML_PartialDocumentKeepsText(t *testing.T) {
	// WHAT: malformed XML that still parses structurally yields whatever
	// text was reached before the decoder gave up.
	engine := testEngine(t)
	payload := []byte("<scan><fault>17158 - Databus Error</fault><broken></scan>")
	text, err := engine.Load(payload, FormatXML)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(text, "17158 - Databus Error") {
		t.Errorf("partial text lost: %q", text)
	}
}

func TestLoadXML_EmptyElementsYieldEmptyDocument(t *testing.T) {
	engine := testEngine(t)
	text, err := engine.Load([]byte("<scan><a/><b></b></scan>"), FormatXML)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Errorf("text = %q, want empty", text)
	}
}
