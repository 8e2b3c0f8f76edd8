// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

const (
	JOB_TTL = time.Hour
)

type JobStatus int

const (
	Pending JobStatus = iota
	Relayed
	Failed
)

func (s JobStatus) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Relayed:
		return "RELAYED"
	case Failed:
		return "FAILED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

func (s JobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Job tracks the relay of the forwarder call of a single teleport
type Job struct {
	DepositTx common.Hash `json:"depositTx"`
	Status    JobStatus   `json:"status"`
	RelayTx   common.Hash `json:"relayTx,omitempty"`
	Error     string      `json:"error,omitempty"`
}

type JobCache struct {
	jobCache *ttlcache.Cache[common.Hash, Job]
}

// NewJobCache starts the cache and a watcher storing the job updates sent on jobChn
func NewJobCache(ctx context.Context, ttl time.Duration, jobChn chan Job) *JobCache {
	if ttl == 0 {
		ttl = JOB_TTL
	}
	cache := ttlcache.New(
		ttlcache.WithTTL[common.Hash, Job](ttl),
	)

	jc := &JobCache{
		jobCache: cache,
	}

	go cache.Start()
	go jc.watch(ctx, jobChn)
	return jc
}

// Reserve marks the deposit as pending and reports whether no job existed for it.
// Failed jobs can be reserved again.
func (c *JobCache) Reserve(depositTx common.Hash) bool {
	item, found := c.jobCache.GetOrSet(depositTx, Job{DepositTx: depositTx, Status: Pending})
	if !found {
		return true
	}
	if item.Value().Status != Failed {
		return false
	}

	c.jobCache.Set(depositTx, Job{DepositTx: depositTx, Status: Pending}, ttlcache.DefaultTTL)
	return true
}

func (c *JobCache) Job(depositTx common.Hash) (Job, error) {
	job := c.jobCache.Get(depositTx)
	if job == nil {
		return Job{}, fmt.Errorf("no relay job found for deposit %s", depositTx.Hex())
	}

	return job.Value(), nil
}

func (c *JobCache) watch(ctx context.Context, jobChn chan Job) {
	for {
		select {
		case job := <-jobChn:
			{
				log.Debug().Msgf("Relay job of deposit %s is %s", job.DepositTx.Hex(), job.Status)
				c.jobCache.Set(job.DepositTx, job, ttlcache.DefaultTTL)
			}
		case <-ctx.Done():
			{
				c.jobCache.Stop()
				return
			}
		}
	}
}
