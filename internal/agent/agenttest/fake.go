// Package agenttest provides an in-memory agent.Provisioner for tests.
package agenttest

import (
	"context"
	"sync"

	"futureyou/internal/agent"
)

// Provisioner records every config it receives and answers with Result or
// Err.
type Provisioner struct {
	Result *agent.Result
	Err    error

	mu      sync.Mutex
	configs []agent.Config
}

// Succeeding returns a Provisioner that reports id under "agent_id".
func Succeeding(id string) *Provisioner {
	return &Provisioner{Result: &agent.Result{LegacyAgentID: id}}
}

// Failing returns a Provisioner that always fails with err.
func Failing(err error) *Provisioner {
	return &Provisioner{Err: err}
}

func (p *Provisioner) CreateAgent(ctx context.Context, cfg agent.Config) (*agent.Result, error) {
	p.mu.Lock()
	p.configs = append(p.configs, cfg)
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	return p.Result, nil
}

// Calls is the number of CreateAgent calls so far.
func (p *Provisioner) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.configs)
}

// Last returns the most recent config, or the zero Config if none.
func (p *Provisioner) Last() agent.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.configs) == 0 {
		return agent.Config{}
	}
	return p.configs[len(p.configs)-1]
}
