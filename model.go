package filesense

import (
	"bytes"
	"math"
)

// Prediction is a raw model output
type Prediction struct {
	Label ContentType
	Score float32
}

// Model predicts a content type from features. Implementations must not
// retain the feature slices after Predict returns.
type Model interface {
	Predict(f Features) Prediction
}

// ModelFunc adapts a function to the Model interface
type ModelFunc func(f Features) Prediction

// Predict calls fn(f)
func (fn ModelFunc) Predict(f Features) Prediction {
	return fn(f)
}

// marker is a piece of evidence for a label
type marker struct {
	text     []byte
	weight   float64
	prefix   bool // must appear at the start of the beginning window
	foldCase bool
}

type labelMarkers struct {
	label   ContentType
	markers []marker
}

func has(text string, weight float64) marker {
	return marker{text: []byte(text), weight: weight}
}

func prefix(text string, weight float64) marker {
	return marker{text: []byte(text), weight: weight, prefix: true}
}

func fold(text string, weight float64) marker {
	return marker{text: bytes.ToLower([]byte(text)), weight: weight, foldCase: true}
}

// textMarkers is evaluated in order; ties resolve to the earlier label
var textMarkers = []labelMarkers{
	{"shell", []marker{prefix("#!/bin/sh", 4), prefix("#!/bin/bash", 4), prefix("#!/usr/bin/env bash", 4), has("then\n", 1), has("fi\n", 1), has("echo ", 1), has("$(", 1), has("esac", 1.5)}},
	{"python", []marker{prefix("#!/usr/bin/env python", 4), has("def ", 1.5), has("import ", 1), has("self.", 1.5), has("elif ", 1.5), has("__init__", 2), has("print(", 0.5), has("None", 0.5)}},
	{"go", []marker{prefix("package ", 2.5), has("func ", 2), has(" := ", 1.5), has("import (", 1.5), has("err != nil", 2), has("chan ", 1)}},
	{"rust", []marker{has("fn ", 1.5), has("let mut ", 2), has("impl ", 1.5), has("pub fn ", 1.5), has("use std::", 2), has("println!", 2)}},
	{"java", []marker{has("public class ", 2.5), has("public static void main", 2.5), has("System.out", 2), prefix("import java.", 2.5), has("private ", 0.5)}},
	{"c", []marker{prefix("#include <", 3), has("#include <", 1), has("int main(", 2), has("printf(", 1), has("->", 0.5), has("void ", 0.5)}},
	{"javascript", []marker{has("function ", 1.5), has("const ", 1), has(" => ", 1), has("console.log", 2), has("require(", 1.5), has("module.exports", 2), has("let ", 0.5)}},
	{"sql", []marker{fold("create table", 2.5), fold("insert into", 2), fold("select ", 1.5), fold(" from ", 1), fold(" where ", 1)}},
	{"css", []marker{has("color:", 1), has("margin:", 1.5), has("padding:", 1.5), has("font-family", 1.5), has("px;", 1.5)}},
	{"html", []marker{fold("<!doctype html", 4), fold("<html", 3), fold("<head", 1.5), fold("<body", 1.5), fold("<div", 1)}},
	{"xml", []marker{prefix("<?xml", 4), has("</", 0.5), has("xmlns", 1.5)}},
	{"markdown", []marker{prefix("# ", 1.5), has("\n# ", 1.5), has("\n## ", 1.5), has("](", 1), has("```", 1.5), has("\n- ", 0.5), has("**", 0.5)}},
	{"yaml", []marker{prefix("---\n", 1.5), has(":\n  ", 1), has("\n- ", 0.5), has(": |", 1)}},
	{"toml", []marker{has(" = \"", 1.5), has("]\n", 0.5), prefix("[", 0.5)}},
	{"ini", []marker{prefix("[", 1), has("=", 0.5), prefix(";", 1)}},
}

// DefaultModel scores textual content from weighted markers and binary
// content from its entropy. It stands in for a trained classifier and is
// deterministic.
type DefaultModel struct {
	// RandomEntropy is the entropy above which binary content is random
	RandomEntropy float64
}

// NewDefaultModel creates the built-in model
func NewDefaultModel() *DefaultModel {
	return &DefaultModel{RandomEntropy: 7.2}
}

// Predict implements Model
func (d *DefaultModel) Predict(f Features) Prediction {
	window := f.Window()
	if !f.Text {
		return d.predictBinary(f)
	}

	if looksRandomText(window, f.Entropy) {
		return Prediction{Label: LabelRandomTxt, Score: 0.9}
	}

	labels := []ContentType{LabelTxt}
	logits := []float64{1.0}

	lower := bytes.ToLower(window)
	for _, lm := range textMarkers {
		var evidence float64
		for _, mk := range lm.markers {
			haystack := window
			if mk.foldCase {
				haystack = lower
			}
			if mk.prefix {
				if bytes.HasPrefix(f.Beg, mk.text) {
					evidence += mk.weight
				}
				continue
			}
			if bytes.Contains(haystack, mk.text) {
				evidence += mk.weight
			}
		}
		if evidence > 0 {
			labels = append(labels, lm.label)
			logits = append(logits, evidence)
		}
	}

	if e := jsonEvidence(f); e > 0 {
		labels = append(labels, "json")
		logits = append(logits, e)
	}
	if e := csvEvidence(window); e > 0 {
		labels = append(labels, "csv")
		logits = append(logits, e)
	}

	best, prob := softmaxArgmax(logits)
	return Prediction{Label: labels[best], Score: float32(prob)}
}

func (d *DefaultModel) predictBinary(f Features) Prediction {
	if f.Entropy >= d.RandomEntropy {
		// Scales from 0.5 at the threshold to 1.0 at 8 bits per byte
		score := 0.5 + 0.5*(f.Entropy-d.RandomEntropy)/(8-d.RandomEntropy)
		return Prediction{Label: LabelRandomBytes, Score: float32(math.Min(score, 1))}
	}
	return Prediction{Label: LabelUnknown, Score: float32(0.5 + f.Entropy/16)}
}

func jsonEvidence(f Features) float64 {
	if len(f.Beg) == 0 || len(f.End) == 0 {
		return 0
	}
	first, last := f.Beg[0], f.End[len(f.End)-1]
	var e float64
	if (first == '{' && last == '}') || (first == '[' && last == ']') {
		e += 3
	}
	if e > 0 && bytes.Contains(f.Beg, []byte(`":`)) {
		e += 1.5
	}
	return e
}

func csvEvidence(window []byte) float64 {
	lines := bytes.Split(window, []byte("\n"))
	if len(lines) < 3 {
		return 0
	}
	want := bytes.Count(lines[0], []byte(","))
	if want == 0 {
		return 0
	}
	consistent := 0
	for _, line := range lines[1:] {
		if len(line) == 0 {
			continue
		}
		if bytes.Count(line, []byte(",")) == want {
			consistent++
		}
	}
	if consistent < 2 {
		return 0
	}
	return 2 + math.Min(float64(consistent)/4, 2)
}

// looksRandomText matches long runs of symbols with almost no word breaks,
// such as base64 blobs or hex dumps
func looksRandomText(window []byte, h float64) bool {
	if len(window) < 64 || h < 5.0 {
		return false
	}
	breaks := bytes.Count(window, []byte(" ")) + bytes.Count(window, []byte("\n"))
	return float64(breaks)/float64(len(window)) < 0.02
}

// sharpness scales marker evidence before the softmax
const sharpness = 2.0

func softmaxArgmax(logits []float64) (int, float64) {
	best := 0
	for i, z := range logits {
		if z > logits[best] {
			best = i
		}
	}
	var sum float64
	for _, z := range logits {
		sum += math.Exp(sharpness * (z - logits[best]))
	}
	return best, 1 / sum
}
