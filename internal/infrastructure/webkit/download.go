package webkit

import (
	"fmt"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/void-browser/void/internal/application/port"
)

// downloadRequest adapts a WebKit download waiting for its destination.
type downloadRequest struct {
	download  *webkit.Download
	suggested string
	uri       string
	mime      string

	once sync.Once
}

var _ port.DownloadRequest = (*downloadRequest)(nil)

func newDownloadRequest(d *webkit.Download, suggested string) *downloadRequest {
	req := &downloadRequest{download: d, suggested: suggested}
	if r := d.Request(); r != nil {
		req.uri = r.URI()
	}
	if resp := d.Response(); resp != nil {
		req.mime = resp.MIMEType()
	}
	return req
}

func (r *downloadRequest) SuggestedFilename() string { return r.suggested }
func (r *downloadRequest) URI() string               { return r.uri }
func (r *downloadRequest) MimeType() string          { return r.mime }

func (r *downloadRequest) Accept(destPath string) {
	r.download.SetDestination(destPath)
}

func (r *downloadRequest) Cancel() {
	r.download.Cancel()
}

// OnFinished reports exactly once: a failure error, or nil on completion.
func (r *downloadRequest) OnFinished(fn func(err error)) {
	var failed bool
	var mu sync.Mutex

	r.download.ConnectFailed(func(err error) {
		mu.Lock()
		failed = true
		mu.Unlock()
		if err == nil {
			err = fmt.Errorf("download failed: %s", r.uri)
		}
		r.once.Do(func() { fn(err) })
	})
	// "finished" also fires after "failed".
	r.download.ConnectFinished(func() {
		mu.Lock()
		f := failed
		mu.Unlock()
		if f {
			return
		}
		r.once.Do(func() { fn(nil) })
	})
}
