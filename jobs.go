package fft3v

import "sync"

// jobControl hands out index ranges [start, stop) of [0, imax) to
// workers: first big blocks covering about 95% of the range, one per
// worker, then small blocks of about 5%/workers so late finishers
// balance out.
type jobControl struct {
	mu       sync.Mutex
	imax     int
	bigLimit int
	bigSize  int
	small    int
	next     int
}

func newJobControl(imax, workers, minJob int) *jobControl {
	workers = max(workers, 1)
	minJob = max(minJob, 1)

	const (
		smallShare = 0.05
		bigShare   = 0.95
	)

	small := int(0.5 + smallShare*float64(imax)/float64(workers))
	if small <= minJob {
		small = minJob
	} else {
		small = minJob * ((small + minJob/2) / minJob)
	}

	// Round the tail so it is a whole number of small blocks.
	rem := imax - int(0.5+bigShare*float64(imax))
	if rem > 0 && rem <= small {
		rem = small
	} else {
		rem = small * int((0.5+float64(rem))/float64(small))
	}

	bigLimit := max(imax-rem, 0)
	bigSize := minJob * ((bigLimit + minJob*workers - 1) / (minJob * workers))

	return &jobControl{imax: imax, bigLimit: bigLimit, bigSize: bigSize, small: small}
}

// claim returns the next job; start >= stop means no work is left.
func (j *jobControl) claim() (start, stop int) {
	j.mu.Lock()

	start = j.next
	if start < j.bigLimit {
		stop = min(start+j.bigSize, j.bigLimit)
	} else {
		stop = start + j.small
	}

	j.next = stop
	j.mu.Unlock()

	return start, min(stop, j.imax)
}
