package translator

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseDiagnostics(t *testing.T) {
	log := "ERROR: 0:12: 'u_fx1_speed' : undeclared identifier\n" +
		"WARNING: 0:3: unused\n" +
		"ERROR: 0:40: '' : compilation terminated \r\n" +
		"ERROR: 2 compilation errors.  No code generated.\n"
	want := []Diagnostic{
		{Line: 12, Message: "'u_fx1_speed' : undeclared identifier"},
		{Line: 40, Message: "'' : compilation terminated"},
	}
	if got := ParseDiagnostics(log); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil) != nil {
		t.Error("nil error produced diagnostics")
	}
	got := FromError(errors.New("translation failed"))
	if len(got) != 1 || got[0].Line != 0 || got[0].Message != "translation failed" {
		t.Errorf("got %+v", got)
	}
	got = FromError(errors.New("compile: ERROR: 0:7: 'x' : syntax error"))
	if len(got) != 1 || got[0].Line != 7 {
		t.Errorf("got %+v", got)
	}
	if s := got[0].String(); s != "line 7: 'x' : syntax error" {
		t.Errorf("String() = %q", s)
	}
}
