//
//  (C) Copyright 2025  Pavel Tisnovsky
//
//  All rights reserved. This program and the accompanying materials
//  are made available under the terms of the Eclipse Public License v1.0
//  which accompanies this distribution, and is available at
//  http://www.eclipse.org/legal/epl-v10.html
//
//  Contributors:
//      Pavel Tisnovsky
//

package diagnostics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tisnik/svitava-deepzoom/diagnostics"
)

func TestWriteHTMLRejectsEmptyLog(t *testing.T) {
	log := &diagnostics.RepairLog{JobID: "empty"}
	if err := log.WriteHTML(filepath.Join(t.TempDir(), "out.html")); err == nil {
		t.Fatal("expected an error for a log with no recorded passes")
	}
}

func TestRecordAppendsPasses(t *testing.T) {
	log := &diagnostics.RepairLog{JobID: "job-1"}
	log.Record(100)
	log.Record(40)
	log.Record(0)

	if len(log.Passes) != 3 {
		t.Fatalf("expected 3 passes, got %d", len(log.Passes))
	}
	if log.Passes[0].Pass != 0 || log.Passes[2].Pass != 2 {
		t.Fatalf("expected passes numbered 0..2 in order, got %+v", log.Passes)
	}
	if log.Passes[2].Remaining != 0 {
		t.Fatalf("expected final pass to record 0 remaining, got %d", log.Passes[2].Remaining)
	}
}

func TestWriteHTMLProducesFile(t *testing.T) {
	log := &diagnostics.RepairLog{JobID: "job-2"}
	log.Record(50)
	log.Record(10)

	filename := filepath.Join(t.TempDir(), "out.html")
	if err := log.WriteHTML(filename); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
}
