package session

import (
	"time"

	"github.com/shirou/gopsutil/v3/mem"

	"offlined/pkg/types"
)

// Status builds a detailed status response for /status.
func (s *Session) Status() types.StatusResponse {
	s.mu.RLock()
	resp := types.StatusResponse{
		State:            string(StateUnloaded),
		LoadsTotal:       s.loads,
		UnloadsTotal:     s.unloads,
		GenerationsTotal: s.generations,
		UptimeSeconds:    int64(time.Since(s.startTime).Seconds()),
		ServerTimeUnix:   time.Now().Unix(),
	}
	if !s.lastUsed.IsZero() {
		resp.LastUsed = s.lastUsed.Unix()
	}
	if s.loaded {
		resp.State = string(StateLoaded)
		resp.Path = s.loadedPath
		resp.Label = modelLabel(s.loadedPath)
		resp.LoadID = s.loadID
	}
	s.mu.RUnlock()

	// Memory stats are best-effort; status must not fail without them.
	if vm, err := mem.VirtualMemory(); err == nil {
		resp.Memory = &types.MemoryStats{
			TotalMB:     vm.Total / (1024 * 1024),
			AvailableMB: vm.Available / (1024 * 1024),
			UsedPercent: vm.UsedPercent,
		}
	}
	return resp
}
