// Package fetchxml defines the vocabulary for constructing FetchXML queries.
// FetchXML is an XML dialect for expressing single-entity queries with
// selection, filtering, joins, ordering, and aggregation; the element and
// attribute names below are fixed by the consuming query engine and are
// case-sensitive on the wire.
package fetchxml

// AllAttributes is the sentinel passed to Select to request every attribute
// of the entity instead of a named subset.
const AllAttributes = "ALL"

// ConditionOperator defines the set of operators that can be used in a filter condition.
type ConditionOperator string

// Supported condition operators.
const (
	OperatorEq      ConditionOperator = "eq"
	OperatorNeq     ConditionOperator = "neq"
	OperatorGt      ConditionOperator = "gt"
	OperatorGe      ConditionOperator = "ge"
	OperatorLt      ConditionOperator = "lt"
	OperatorLe      ConditionOperator = "le"
	OperatorLike    ConditionOperator = "like"
	OperatorNotLike ConditionOperator = "not-like"
	OperatorNull    ConditionOperator = "null"
	OperatorNotNull ConditionOperator = "not-null"
)

// AggregationType defines the aggregation function applied to an attribute.
type AggregationType string

// Supported aggregation functions.
const (
	AggregationTypeCount AggregationType = "count"
	AggregationTypeSum   AggregationType = "sum"
	AggregationTypeAvg   AggregationType = "avg"
	AggregationTypeMin   AggregationType = "min"
	AggregationTypeMax   AggregationType = "max"
)

// LinkType defines the join semantics of a linked entity.
type LinkType string

// Supported link types.
const (
	LinkTypeInner LinkType = "inner"
	LinkTypeOuter LinkType = "outer"
)
