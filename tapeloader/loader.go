// This file is part of zxtape.
//
// zxtape is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zxtape is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zxtape.  If not, see <https://www.gnu.org/licenses/>.

package tapeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/zxtape/curated"
	"github.com/jetsetilly/zxtape/logger"
	"github.com/jetsetilly/zxtape/tape"
	"github.com/jetsetilly/zxtape/tape/block"
)

// Sentinel errors returned by the tapeloader package.
const (
	UnsupportedExtension = "tapeloader: unsupported file extension (%s)"
	UnsupportedScheme    = "tapeloader: unsupported URL scheme (%s)"
	UnexpectedHash       = "tapeloader: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions that are recognised by the
// tapeloader package.
var FileExtensions = [...]string{".TAP", ".TZX"}

// Loader specifies a tape file.
type Loader struct {
	// filename or URL of the tape file
	Filename string

	// format of the tape file as indicated by the file extension. the tape
	// player will check the contents of the file and will play a TZX file
	// even if the extension says otherwise
	Format block.Format

	// expected hash of the tape file. an empty string indicates that the
	// hash is unknown and need not be validated. after a call to Load() the
	// value will be the hash of the loaded data
	Hash string

	// the entire tape file. only filled by Load()
	Data []byte

	// permission for log entries made by the Loader. a nil value allows
	// logging
	Permission logger.Permission
}

// NewLoader is the preferred method of initialisation for the Loader type.
// Returns an UnsupportedExtension error if the filename does not have one of
// the FileExtensions.
func NewLoader(filename string) (Loader, error) {
	tl := Loader{
		Filename: filename,
	}

	// path.Ext() works on URLs as well as local paths. any query part of the
	// URL will confuse it but that's unlikely for a tape file
	ext := strings.ToUpper(path.Ext(filename))
	switch ext {
	case ".TAP":
		tl.Format = block.TAP
	case ".TZX":
		tl.Format = block.TZX
	default:
		return Loader{}, curated.Errorf(UnsupportedExtension, ext)
	}

	return tl, nil
}

// ShortName returns a shortened version of the Loader filename.
func (tl Loader) ShortName() string {
	shortName := path.Base(tl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(tl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (tl Loader) HasLoaded() bool {
	return len(tl.Data) > 0
}

func (tl Loader) scheme() string {
	u, err := url.Parse(tl.Filename)
	if err != nil {
		return "file"
	}
	return u.Scheme
}

func (tl Loader) remote() bool {
	s := tl.scheme()
	return s == "http" || s == "https"
}

// Load the entire tape file into the Data field. Loader filenames with a
// valid scheme will use that method to load the data. Currently supported
// schemes are HTTP and local files.
func (tl *Loader) Load() error {
	if len(tl.Data) > 0 {
		return nil
	}

	switch tl.scheme() {
	case "http", "https":
		resp, err := http.Get(tl.Filename)
		if err != nil {
			return curated.Errorf("tapeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("tapeloader: %v", resp.Status)
		}

		tl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("tapeloader: %v", err)
		}

	case "file", "":
		var err error
		tl.Data, err = os.ReadFile(tl.Filename)
		if err != nil {
			return curated.Errorf("tapeloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, tl.scheme())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(tl.Data))
	if tl.Hash != "" && tl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}
	tl.Hash = hash

	logger.Logf(tl.permission(), "tapeloader", "%s: %d bytes (sha1 %s)", tl.ShortName(), len(tl.Data), tl.Hash)

	return nil
}

func (tl Loader) permission() logger.Permission {
	if tl.Permission == nil {
		return logger.Allow
	}
	return tl.Permission
}

// Open the tape file for playing. Files on the local filesystem are streamed
// from disk. Remote files and Loaders that have already been loaded are
// played from memory.
func (tl *Loader) Open() (tape.Source, error) {
	if tl.HasLoaded() || tl.remote() {
		if err := tl.Load(); err != nil {
			return nil, err
		}
		return memorySource{Reader: bytes.NewReader(tl.Data)}, nil
	}

	if s := tl.scheme(); s != "file" && s != "" {
		return nil, curated.Errorf(UnsupportedScheme, s)
	}

	f, err := os.Open(tl.Filename)
	if err != nil {
		return nil, curated.Errorf("tapeloader: %v", err)
	}

	// not using Stat() on the file handle because the windows version
	// (when running under wine) does not handle that
	fi, err := os.Stat(tl.Filename)
	if err != nil {
		f.Close()
		return nil, curated.Errorf("tapeloader: %v", err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, curated.Errorf("tapeloader: %v", fmt.Sprintf("%s is a directory", tl.Filename))
	}

	return fileSource{File: f, size: fi.Size()}, nil
}

// Opener implements the tape.Opener interface.
type Opener struct {
	// passed to every Loader created by the Opener
	Permission logger.Permission
}

// Open implements the tape.Opener interface.
func (o Opener) Open(path string) (tape.Source, error) {
	tl, err := NewLoader(path)
	if err != nil {
		return nil, err
	}
	tl.Permission = o.Permission
	return tl.Open()
}
