package go_nano

import (
	"context"
	"encoding/binary"
	"hash"
	"math"
	"time"
)

// Proof of work
//
// A work value is valid for a block hash when the little-endian reading
// of BLAKE2b-64(nonce_le || hash) is at least the threshold. Nonces travel
// as big-endian hex and are hashed little-endian; the threshold is a plain
// uint64 parsed from big-endian hex.

// workHasher computes work digests for one block hash, reusing its buffers
// across candidates. It is owned by a single goroutine.
type workHasher struct {
	h   hash.Hash
	buf [WORK_LENGTH + BLOCK_HASH_LENGTH]byte
	sum [WORK_HASH_LENGTH]byte
}

func newWorkHasher(blockHash BlockHash) *workHasher {
	wh := &workHasher{h: newHash(WORK_HASH_LENGTH)}
	copy(wh.buf[WORK_LENGTH:], blockHash[:])
	return wh
}

// difficulty returns the digest value of nonce.
func (wh *workHasher) difficulty(nonce uint64) uint64 {
	binary.LittleEndian.PutUint64(wh.buf[:WORK_LENGTH], nonce)
	wh.h.Reset()
	wh.h.Write(wh.buf[:])
	return binary.LittleEndian.Uint64(wh.h.Sum(wh.sum[:0]))
}

// WorkDifficulty returns the digest value that work achieves for
// blockHash.
func WorkDifficulty(blockHash BlockHash, work Work) uint64 {
	return newWorkHasher(blockHash).difficulty(work.Uint64())
}

// ValidateWork reports whether work meets threshold for blockHash.
func ValidateWork(blockHash BlockHash, threshold uint64, work Work) bool {
	return WorkDifficulty(blockHash, work) >= threshold
}

// ValidateWorkWithConfig validates against the configured threshold.
func ValidateWorkWithConfig(cfg *Config, blockHash BlockHash, work Work) bool {
	return ValidateWork(blockHash, cfg.WorkThreshold(), work)
}

// WorkRange returns the inclusive nonce range [lower, upper] searched by
// workerIndex out of workerCount. Ranges are contiguous and equal except
// the last, which extends to 2^64-1; together they cover the nonce space
// exactly once.
func WorkRange(workerIndex, workerCount uint64) (lower, upper uint64, err error) {
	if workerCount == 0 || workerIndex >= workerCount {
		return 0, 0, NewWorkError(workerIndex, workerCount, ErrInvalidWorkerParameters)
	}

	interval := math.MaxUint64 / workerCount
	lower = workerIndex * interval
	if workerIndex == workerCount-1 {
		return lower, math.MaxUint64, nil
	}
	return lower, lower + interval - 1, nil
}

// GenerateWork scans the range of workerIndex out of workerCount in order
// and returns the first nonce meeting threshold. found is false if the
// range is exhausted. The scan does not poll for cancellation; use
// ComputeWork for an interruptible search.
func GenerateWork(blockHash BlockHash, threshold, workerIndex, workerCount uint64) (work Work, found bool, err error) {
	lower, upper, err := WorkRange(workerIndex, workerCount)
	if err != nil {
		return work, false, err
	}

	Debug("Generating work for %s in range [%016x, %016x]", blockHash, lower, upper)
	nonce, found, err := scanWorkRange(context.Background(), blockHash, threshold, lower, upper, nil)
	if err != nil || !found {
		return work, false, err
	}
	return WorkFromUint64(nonce), true, nil
}

// scanWorkRange tests nonces lower..upper inclusive. A context whose Done
// channel is nil (context.Background) is never polled.
func scanWorkRange(ctx context.Context, blockHash BlockHash, threshold, lower, upper uint64, metrics WorkMetrics) (uint64, bool, error) {
	if metrics == nil {
		metrics = noopWorkMetrics{}
	}

	start := time.Now()
	wh := newWorkHasher(blockHash)
	done := ctx.Done()

	var tested uint64
	defer func() {
		metrics.AddWorkAttempts(tested)
		metrics.RecordWorkDuration(time.Since(start))
	}()

	for nonce := lower; ; nonce++ {
		tested++
		if wh.difficulty(nonce) >= threshold {
			metrics.IncrementWorkFound()
			return nonce, true, nil
		}
		if nonce == upper {
			metrics.IncrementWorkExhausted()
			return 0, false, nil
		}
		if done != nil && tested%workPollInterval == 0 {
			select {
			case <-done:
				metrics.IncrementWorkCancelled()
				return 0, false, ctx.Err()
			default:
			}
		}
	}
}
