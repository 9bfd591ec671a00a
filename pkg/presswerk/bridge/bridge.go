package bridge

import (
	"context"
	"errors"

	"github.com/presswerk/presswerk-go/pkg/presswerk/logging"
)

// ErrPlatformUnavailable reports a native capability missing on the current
// platform (the desktop stub, or a capability the OS build lacks).
var ErrPlatformUnavailable = errors.New("bridge: feature not available on this platform")

// NativePrint presents the OS print dialog.
type NativePrint interface {
	// ShowPrintDialog presents the dialog for the document. Returning nil
	// means the dialog was presented; the user may still cancel.
	ShowPrintDialog(document []byte, mimeType string) error
}

// NativeCamera captures images with the system camera.
type NativeCamera interface {
	// CaptureImage returns the captured JPEG bytes, or nil when the user
	// cancelled.
	CaptureImage() ([]byte, error)
}

// NativeFilePicker picks and reads files from device storage.
type NativeFilePicker interface {
	// PickFile shows a picker filtered to the MIME types and returns the
	// chosen path, or "" when cancelled.
	PickFile(mimeTypes []string) (string, error)
	// ReadPickedFile reads the bytes of a previously picked file.
	ReadPickedFile(path string) ([]byte, error)
}

// NativeShare shares content through the OS share sheet.
type NativeShare interface {
	ShareFile(path, mimeType string) error
}

// PlatformBridge groups every native capability behind one interface.
type PlatformBridge interface {
	NativePrint
	NativeCamera
	NativeFilePicker
	NativeShare
	Keychain

	// PlatformName is a human-readable platform label, e.g. "Android".
	PlatformName() string
}

// StubBridge is the bridge used on desktop and CI builds where the mobile
// SDKs are unavailable. Every capability fails with
// ErrPlatformUnavailable; the keychain is backed by process memory so
// desktop flows that only need secret storage still work.
type StubBridge struct {
	log      logging.Logger
	keychain *MemKeychain
}

// NewStubBridge returns the desktop stub. A nil logger binds to the
// default.
func NewStubBridge(log logging.Logger) *StubBridge {
	if log == nil {
		log = logging.New(nil)
	}
	return &StubBridge{log: log, keychain: NewMemKeychain()}
}

func (s *StubBridge) PlatformName() string { return "Desktop (stub)" }

func (s *StubBridge) ShowPrintDialog(document []byte, mimeType string) error {
	s.log.Warn(context.Background(), "show_print_dialog called on stub bridge", "mime", mimeType)
	return ErrPlatformUnavailable
}

func (s *StubBridge) CaptureImage() ([]byte, error) {
	s.log.Warn(context.Background(), "capture_image called on stub bridge")
	return nil, ErrPlatformUnavailable
}

func (s *StubBridge) PickFile(mimeTypes []string) (string, error) {
	s.log.Warn(context.Background(), "pick_file called on stub bridge", "mime_types", mimeTypes)
	return "", ErrPlatformUnavailable
}

func (s *StubBridge) ReadPickedFile(path string) ([]byte, error) {
	return nil, ErrPlatformUnavailable
}

func (s *StubBridge) ShareFile(path, mimeType string) error {
	s.log.Warn(context.Background(), "share_file called on stub bridge", "mime", mimeType)
	return ErrPlatformUnavailable
}

func (s *StubBridge) StoreSecret(key string, value []byte) error {
	return s.keychain.StoreSecret(key, value)
}

func (s *StubBridge) LoadSecret(key string) ([]byte, bool, error) {
	return s.keychain.LoadSecret(key)
}

func (s *StubBridge) DeleteSecret(key string) error {
	return s.keychain.DeleteSecret(key)
}

// Checked wraps a bridge so every operation is affinity-guarded before it
// reaches the native side. A MainThread operation invoked off the main
// thread fails immediately with ErrMainThreadRequired instead of
// misbehaving in the native SDK.
func Checked(b PlatformBridge, g *Guard) PlatformBridge {
	if g == nil {
		g = NewGuard()
	}
	return &checkedBridge{inner: b, guard: g}
}

type checkedBridge struct {
	inner PlatformBridge
	guard *Guard
}

func (c *checkedBridge) PlatformName() string { return c.inner.PlatformName() }

func (c *checkedBridge) ShowPrintDialog(document []byte, mimeType string) error {
	if err := c.guard.Check(OpShowPrintDialog); err != nil {
		return err
	}
	return c.inner.ShowPrintDialog(document, mimeType)
}

func (c *checkedBridge) CaptureImage() ([]byte, error) {
	if err := c.guard.Check(OpCaptureImage); err != nil {
		return nil, err
	}
	return c.inner.CaptureImage()
}

func (c *checkedBridge) PickFile(mimeTypes []string) (string, error) {
	if err := c.guard.Check(OpPickFile); err != nil {
		return "", err
	}
	return c.inner.PickFile(mimeTypes)
}

func (c *checkedBridge) ReadPickedFile(path string) ([]byte, error) {
	if err := c.guard.Check(OpReadPickedFile); err != nil {
		return nil, err
	}
	return c.inner.ReadPickedFile(path)
}

func (c *checkedBridge) ShareFile(path, mimeType string) error {
	if err := c.guard.Check(OpShareFile); err != nil {
		return err
	}
	return c.inner.ShareFile(path, mimeType)
}

func (c *checkedBridge) StoreSecret(key string, value []byte) error {
	if err := c.guard.Check(OpStoreSecret); err != nil {
		return err
	}
	return c.inner.StoreSecret(key, value)
}

func (c *checkedBridge) LoadSecret(key string) ([]byte, bool, error) {
	if err := c.guard.Check(OpLoadSecret); err != nil {
		return nil, false, err
	}
	return c.inner.LoadSecret(key)
}

func (c *checkedBridge) DeleteSecret(key string) error {
	if err := c.guard.Check(OpDeleteSecret); err != nil {
		return err
	}
	return c.inner.DeleteSecret(key)
}
