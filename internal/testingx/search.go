package testingx

//
// Evaluating job search queries
//

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/vaultline/backupsdk/internal/apijson"
	"github.com/vaultline/backupsdk/internal/runtimex"
	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// searchFieldPrefix prefixes the RuleField of clauses matching jobs.
const searchFieldPrefix = "BackupJobDetail."

// MatchJob returns whether job matches clause. The RuleField of a rule
// names a job key with the BackupJobDetail. prefix (e.g., BackupJobDetail.Status).
func MatchJob(clause *apimodel.SearchClause, job *apimodel.BackupJobDetail) bool {
	return matchClause(clause, runtimex.Try1(apijson.Marshal(job)))
}

func matchClause(clause *apimodel.SearchClause, job []byte) bool {
	switch clause.ClauseType {
	case apimodel.SearchClauseAnd:
		for idx := range clause.ClauseChildren {
			if !matchClause(&clause.ClauseChildren[idx], job) {
				return false
			}
		}
		return true

	case apimodel.SearchClauseOr:
		for idx := range clause.ClauseChildren {
			if matchClause(&clause.ClauseChildren[idx], job) {
				return true
			}
		}
		return false

	default:
		return matchRule(clause, job)
	}
}

func matchRule(clause *apimodel.SearchClause, job []byte) bool {
	field := strings.TrimPrefix(clause.RuleField, searchFieldPrefix)
	value := gjson.GetBytes(job, field)
	if !value.Exists() {
		return false
	}
	switch clause.RuleOperator {
	case apimodel.SearchOperatorStringEquals:
		return value.String() == clause.RuleValue
	case apimodel.SearchOperatorStringNotEquals:
		return value.String() != clause.RuleValue
	case apimodel.SearchOperatorStringContains:
		return strings.Contains(value.String(), clause.RuleValue)
	case apimodel.SearchOperatorStringNotContains:
		return !strings.Contains(value.String(), clause.RuleValue)
	case apimodel.SearchOperatorStringStartsWith:
		return strings.HasPrefix(value.String(), clause.RuleValue)
	case apimodel.SearchOperatorStringNotStartsWith:
		return !strings.HasPrefix(value.String(), clause.RuleValue)
	case apimodel.SearchOperatorBoolIs:
		return value.Bool() == (clause.RuleValue == "true" || clause.RuleValue == "1")
	case apimodel.SearchOperatorBoolIsNot:
		return value.Bool() != (clause.RuleValue == "true" || clause.RuleValue == "1")
	}
	want, err := strconv.ParseInt(clause.RuleValue, 10, 64)
	if err != nil {
		return false
	}
	got := value.Int()
	switch clause.RuleOperator {
	case apimodel.SearchOperatorIntEquals:
		return got == want
	case apimodel.SearchOperatorIntNotEquals:
		return got != want
	case apimodel.SearchOperatorIntGreaterThan:
		return got > want
	case apimodel.SearchOperatorIntLessThan:
		return got < want
	default:
		return false
	}
}
