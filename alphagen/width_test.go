package alphagen

import (
	"strings"
	"testing"
)

func TestResolveWidth(t *testing.T) {
	type testRow struct {
		maxCode   uint8
		requested int
		width     int
	}

	testData := [...]testRow{
		{maxCode: 0, requested: 0, width: 1},
		{maxCode: 1, requested: 0, width: 1},
		{maxCode: 3, requested: 0, width: 2},
		{maxCode: 4, requested: 0, width: 3},
		{maxCode: 7, requested: 0, width: 3},
		{maxCode: 8, requested: 0, width: 4},
		{maxCode: 15, requested: 0, width: 4},
		{maxCode: 16, requested: 0, width: 5},
		{maxCode: 127, requested: 0, width: 7},
		{maxCode: 255, requested: 0, width: 8},
		{maxCode: 3, requested: 2, width: 2},
		{maxCode: 3, requested: 8, width: 8},
	}
	for _, row := range testData {
		width, err := resolveWidth(row.maxCode, row.requested)
		if err != nil {
			t.Errorf("resolveWidth(%d, %d) failed: %v", row.maxCode, row.requested, err)
			continue
		}
		if width != row.width {
			t.Errorf("resolveWidth(%d, %d):\n\texpect: %d\n\tactual: %d", row.maxCode, row.requested, row.width, width)
		}
	}
}

func TestResolveWidth_TooSmall(t *testing.T) {
	_, err := resolveWidth(3, 1)
	if err == nil {
		t.Fatal("expected an error for a 1-bit width over 4 codes")
	}
	if err.Kind != WidthTooSmall {
		t.Errorf("wrong kind:\n\texpect: %v\n\tactual: %v", WidthTooSmall, err.Kind)
	}
	if !strings.Contains(err.Error(), "min: 2") {
		t.Errorf("error does not report the minimum width: %v", err)
	}

	_, err = resolveWidth(255, 4)
	if err == nil || err.Kind != WidthTooSmall {
		t.Errorf("expected WidthTooSmall, got %v", err)
	}
}

func TestResolveWidth_TooWide(t *testing.T) {
	_, err := resolveWidth(3, 9)
	if err == nil || err.Kind != BadAttribute {
		t.Errorf("expected BadAttribute for a 9-bit width, got %v", err)
	}
}
