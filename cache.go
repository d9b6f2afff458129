package uproot

import (
	"fmt"
	"sync"
)

// planCache memoizes PlanBranch results. Planning is pure (invariant P5):
// the same streamer schema and branch shape always produce the same Plan,
// so repeated planning of the same branch across many baskets is wasted
// work worth caching.
var planCache sync.Map // key: string -> *Plan

func planCacheKey(node Node, dims []int32, jagged bool) string {
	return fmt.Sprintf("%s|%s|%v|%v", node.Name, node.TypeName, dims, jagged)
}

func cachedPlanBranch(node Node, schema Schema, dims []int32, jagged bool) (*Plan, error) {
	key := planCacheKey(node, dims, jagged)
	if v, ok := planCache.Load(key); ok {
		return v.(*Plan), nil
	}

	plan, err := PlanBranch(node, schema, dims, jagged)
	if err != nil {
		return nil, err
	}

	actual, _ := planCache.LoadOrStore(key, plan)
	return actual.(*Plan), nil
}

// ResetPlanCache drops every cached plan. Exposed for tests and for callers
// that reuse this process across files with conflicting streamer info for
// the same class name.
func ResetPlanCache() {
	planCache.Range(func(k, _ interface{}) bool {
		planCache.Delete(k)
		return true
	})
}
