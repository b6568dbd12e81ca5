package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/files"
)

// startDropFolder begins watching the drop folder, if one is configured,
// and returns the first listener command.
func (m *Model) startDropFolder() tea.Cmd {
	if m.watchDir == "" || m.watcher != nil {
		return nil
	}

	w, err := files.NewWatcher(m.config.GetWatchExtensions(), files.DefaultDebounce)
	if err != nil {
		m.log.Error("failed to create watcher", "error", err)
		return m.ShowFlashError("Drop folder unavailable")
	}

	ch, err := w.Watch(m.ctx, m.watchDir)
	if err != nil {
		m.log.Error("failed to watch drop folder", "dir", m.watchDir, "error", err)
		w.Close()
		return m.ShowFlashError("Cannot watch " + m.watchDir)
	}

	m.watcher = w
	m.drops = ch
	return m.listenForDrops()
}

// listenForDrops creates a command that waits for the next batch from
// the drop folder. It returns nil once the channel closes.
func (m *Model) listenForDrops() tea.Cmd {
	ch := m.drops
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		paths, ok := <-ch
		if !ok {
			return nil
		}
		return DropBatchMsg{Paths: paths}
	}
}

// describeDropped stats dropped files off the event loop.
func (m *Model) describeDropped(paths []string) tea.Cmd {
	if len(paths) == 0 {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		found, err := files.DescribeAll(ctx, paths)
		return FilesResolvedMsg{Files: found, Err: err, Source: SourceDrop}
	}
}
