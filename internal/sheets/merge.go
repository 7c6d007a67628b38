package sheets

import "triptrack/internal/model"

// Merge policy, by field:
//
//	Trip.ID / Expense.ID   match key, never changed
//	Trip scalar fields     overwrite with remote (last write wins)
//	Trip.Members           keep remote if non-empty, else keep local if
//	                       non-empty, else empty
//	Expense scalar fields  overwrite with remote
//	Expense.CreatedAt      keep local (the sheet carries no column)
//	unknown remote ids     append as new records
//	local-only records     kept; deletions never propagate in either
//	                       direction
//
// Merging the same remote rows twice with no local edits in between is
// a no-op the second time.

// MergeTrips reconciles remote trip rows into the local list, in place
// semantics: the returned slice reuses local's backing array.
func MergeTrips(local, remote []model.Trip) []model.Trip {
	for _, r := range remote {
		if r.ID == "" {
			continue
		}
		idx := -1
		for i := range local {
			if local[i].ID == r.ID {
				idx = i
				break
			}
		}
		if idx == -1 {
			local = append(local, r)
			continue
		}

		merged := r
		merged.Members = mergeMembers(local[idx].Members, r.Members)
		local[idx] = merged
	}
	return local
}

func mergeMembers(local, remote []model.Member) []model.Member {
	if len(remote) > 0 {
		return remote
	}
	if len(local) > 0 {
		return local
	}
	return nil
}

// MergeExpenses reconciles remote expense rows into the local list.
func MergeExpenses(local, remote []model.Expense) []model.Expense {
	for _, r := range remote {
		if r.ID == "" {
			continue
		}
		idx := -1
		for i := range local {
			if local[i].ID == r.ID {
				idx = i
				break
			}
		}
		if idx == -1 {
			local = append(local, r)
			continue
		}

		merged := r
		merged.CreatedAt = local[idx].CreatedAt
		local[idx] = merged
	}
	return local
}
