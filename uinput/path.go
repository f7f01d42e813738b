package uinput

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const sysfsVirtualInput = "/sys/devices/virtual/input"

// Path resolves the kernel-assigned sysfs name back to the device's
// /dev/input/eventN node by scanning the virtual device's sysfs subtree for
// its single "event*" child. This is a best-effort filesystem walk, not a
// kernel-guaranteed mapping.
func (d *Device) Path() (string, error) {
	sysname, err := d.sysname()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(sysfsVirtualInput, sysname)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), "event") {
			return filepath.Join("/dev/input", entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no event node under %s", dir)
}

// WaitForPath resolves the device's /dev/input node and waits until it
// actually exists. Device nodes appear asynchronously after activation, so
// the initial check is followed by watching /dev/input for create events
// until the node shows up or the timeout passes.
func (d *Device) WaitForPath(timeout time.Duration) (string, error) {
	path, err := d.Path()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return "", err
	}
	defer watcher.Close()

	if err := watcher.Add("/dev/input"); err != nil {
		return "", err
	}

	// The node may have appeared between the stat and the watch setup.
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return "", fmt.Errorf("watch /dev/input: watcher closed")
			}
			if event.Op.Has(fsnotify.Create) && event.Name == path {
				return path, nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return "", fmt.Errorf("watch /dev/input: watcher closed")
			}
			return "", fmt.Errorf("watch /dev/input: %w", err)
		case <-deadline.C:
			return "", fmt.Errorf("device node %s did not appear within %s", path, timeout)
		}
	}
}
