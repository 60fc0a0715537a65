package guard

import "sync"

// Evaluator wraps the pure decision function with the per-mount one-shot
// redirect flag. The decision re-evaluates after a redirect has been issued
// (the session or path may have changed underneath it), and without the flag
// that re-evaluation would issue the same redirect again and loop.
type Evaluator struct {
	policy Policy

	lock       sync.Mutex
	redirected bool
}

// NewEvaluator creates an evaluator for one mount of the guarded route tree
func NewEvaluator(policy Policy) *Evaluator {
	return &Evaluator{policy: policy}
}

// Evaluate computes the decision for a navigation. A redirect decision is
// emitted at most once per mount; once issued, later evaluations allow the
// in-flight navigation to settle instead of redirecting again.
func (e *Evaluator) Evaluate(pathname string, snapshot Snapshot) Decision {
	decision := e.policy.Decide(pathname, snapshot)
	if !decision.Redirect() {
		return decision
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	if e.redirected {
		return Allow
	}
	e.redirected = true
	return decision
}

// Reset clears the one-shot flag, modelling a fresh mount
func (e *Evaluator) Reset() {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.redirected = false
}
