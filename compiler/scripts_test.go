package compiler

import (
	"errors"
	"testing"
)

func classify(t *testing.T, src string) ([]scriptBlock, error) {
	t.Helper()
	return classifyScripts(parseParts(t, src).scripts)
}

func TestClassifyScripts(t *testing.T) {
	src := `<script event="constructor">c();</script>
<script event="connected">on();</script>
<script event="disconnected">off();</script>
<script event="attr" attr="value">a();</script>
<script event="getter" name="total">return 1;</script>
<script event="setter" name="total">set(value);</script>`

	blocks, err := classify(t, src)
	if err != nil {
		t.Fatalf("classifyScripts: %v", err)
	}
	if len(blocks) != 6 {
		t.Fatalf("expected 6 blocks, got %d", len(blocks))
	}

	want := []scriptBlock{
		{role: roleConstructor, body: "c();"},
		{role: roleConnected, body: "on();"},
		{role: roleDisconnected, body: "off();"},
		{role: roleAttr, attr: "value", body: "a();"},
		{role: roleGetter, name: "total", body: "return 1;"},
		{role: roleSetter, name: "total", body: "set(value);"},
	}
	for i, w := range want {
		if blocks[i] != w {
			t.Errorf("block %d = %+v, want %+v", i, blocks[i], w)
		}
	}
}

func TestClassifyScriptsSkipsPlainScripts(t *testing.T) {
	src := `<script>setup();</script>
<script src="ext.js"></script>
<script event="connected">on();</script>`

	blocks, err := classify(t, src)
	if err != nil {
		t.Fatalf("classifyScripts: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected only the connected block, got %d", len(blocks))
	}
	if blocks[0].role != roleConnected {
		t.Errorf("role = %v, want roleConnected", blocks[0].role)
	}
}

func TestClassifyScriptsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown role", `<script event="clicked">x();</script>`, ErrUnknownRole},
		{"attr without attr name", `<script event="attr">x();</script>`, ErrMissingScriptName},
		{"attr with empty attr name", `<script event="attr" attr="">x();</script>`, ErrMissingScriptName},
		{"getter without name", `<script event="getter">return 1;</script>`, ErrMissingScriptName},
		{"setter without name", `<script event="setter">x();</script>`, ErrMissingScriptName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := classify(t, tc.src)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestClassifyScriptsKeepsSourceOrder(t *testing.T) {
	src := `<script event="connected">one();</script>
<script event="connected">two();</script>
<script event="connected">three();</script>`

	blocks, err := classify(t, src)
	if err != nil {
		t.Fatalf("classifyScripts: %v", err)
	}
	bodies := []string{"one();", "two();", "three();"}
	for i, want := range bodies {
		if blocks[i].body != want {
			t.Errorf("block %d body = %q, want %q", i, blocks[i].body, want)
		}
	}
}
