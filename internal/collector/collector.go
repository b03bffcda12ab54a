package collector

import (
	"context"
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessInfo is one row of the process listing.
type ProcessInfo struct {
	PID    int32   `json:"pid"`
	Name   string  `json:"name,omitempty"`
	CPU    float64 `json:"cpu_percent,omitempty"`
	Memory float32 `json:"memory_percent,omitempty"`
}

func (p ProcessInfo) String() string {
	name := p.Name
	if name == "" {
		name = "?"
	}
	return fmt.Sprintf("%7d  %-24s %5.1f%% cpu %5.1f%% mem", p.PID, name, p.CPU, p.Memory)
}

// ProcessProvider defines the contract for anything that can list processes.
type ProcessProvider interface {
	ListProcesses(ctx context.Context) ([]ProcessInfo, error)
}

// SystemCollector lists the processes of the local machine.
type SystemCollector struct {
	cfg CollectorConfig
}

// NewSystemCollector returns a collector using cfg, or an error if cfg is
// invalid.
func NewSystemCollector(cfg CollectorConfig) (*SystemCollector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SystemCollector{cfg: cfg}, nil
}

// ListProcesses returns up to cfg.Limit processes ordered by PID. Processes
// that vanish while being inspected are skipped.
func (c *SystemCollector) ListProcesses(ctx context.Context) ([]ProcessInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pids: %w", err)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	processes := make([]ProcessInfo, 0, min(len(pids), c.cfg.Limit))
	for _, pid := range pids {
		if len(processes) >= c.cfg.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return processes, fmt.Errorf("listing processes: %w", err)
		}
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			continue
		}
		name, _ := p.NameWithContext(ctx)
		cpuPct, _ := p.CPUPercentWithContext(ctx)
		memPct, _ := p.MemoryPercentWithContext(ctx)

		processes = append(processes, ProcessInfo{
			PID:    pid,
			Name:   name,
			CPU:    cpuPct,
			Memory: memPct,
		})
	}
	return processes, nil
}

// Rows renders processes as list rows.
func Rows(ps []ProcessInfo) []string {
	rows := make([]string, len(ps))
	for i, p := range ps {
		rows[i] = p.String()
	}
	return rows
}
