package errcode

import (
	"errors"
	"testing"
)

func TestCodeIsError(t *testing.T) {
	var err error = ProbeSilent
	if err.Error() != "probe_silent" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestEWrapsCause(t *testing.T) {
	cause := errors.New("port closed")
	e := &E{C: PortWrite, Op: "hc12.SendLine", Err: cause}
	if !errors.Is(e, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
	if Of(e) != PortWrite {
		t.Fatalf("Of = %v", Of(e))
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) = %v", Of(nil))
	}
	if Of(UnknownDevice) != UnknownDevice {
		t.Fatalf("Of(code) = %v", Of(UnknownDevice))
	}
	if Of(errors.New("plain")) != Error {
		t.Fatalf("Of(plain) = %v", Of(errors.New("plain")))
	}
}

func TestEMessage(t *testing.T) {
	e := &E{C: UnknownDevice, Op: "config.Node", Msg: "node-z"}
	if e.Error() != "unknown_device: node-z" {
		t.Fatalf("Error() = %q", e.Error())
	}
	bare := &E{C: Timeout}
	if bare.Error() != "timeout" {
		t.Fatalf("Error() = %q", bare.Error())
	}
}
