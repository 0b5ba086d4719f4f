package fetchxml

import (
	"github.com/asaidimu/go-events"
	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Builder provides a fluent and intuitive API for assembling a FetchXML query
// document. It owns an ordered XML tree rooted at a fetch element and appends
// to it step by step; every mutating method returns the builder to support
// call chaining, culminating in ToString.
type Builder struct {
	doc      *etree.Document
	root     *etree.Element
	entity   *etree.Element
	filter   *etree.Element
	selected []string
	seq      int64
	logger   *zap.Logger
	bus      *events.TypedEventBus[BuilderEvent]
}

// New creates a builder for a query over the given root entity. The resulting
// document contains a fetch element with a single entity child and no other
// content. The entity name is not validated against any metadata.
func New(rootEntity string) *Builder {
	doc := etree.NewDocument()
	root := doc.CreateElement("fetch")
	entity := root.CreateElement("entity")
	entity.CreateAttr("name", rootEntity)
	return &Builder{
		doc:    doc,
		root:   root,
		entity: entity,
		logger: zap.NewNop(),
	}
}

// WithLogger replaces the builder's logger. The default is a no-op logger.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithEventBus attaches an event bus to the builder. Once attached, every
// mutating call emits a BuilderEvent describing the change.
func (b *Builder) WithEventBus(bus *events.TypedEventBus[BuilderEvent]) *Builder {
	b.bus = bus
	return b
}

// EntityName returns the name attribute of the builder's current entity element.
func (b *Builder) EntityName() string {
	return b.entity.SelectAttrValue("name", "")
}

// SelectedAttributes returns a snapshot of the attribute names accumulated by
// Select calls, in the order they were given. The AllAttributes sentinel is
// not recorded. Mutating the returned slice does not affect the builder.
func (b *Builder) SelectedAttributes() []string {
	return append([]string(nil), b.selected...)
}

// Select appends one attribute element per name, in the order given. Passing
// the AllAttributes sentinel as the sole argument appends a single
// all-attributes marker instead. Repeated calls accumulate; nothing is
// deduplicated or replaced, and combining the sentinel with named attributes
// across calls is not prevented here.
func (b *Builder) Select(attributes ...string) *Builder {
	if len(attributes) == 1 && attributes[0] == AllAttributes {
		b.entity.CreateElement("all-attributes")
		b.logger.Debug("selected all attributes", zap.String("entity", b.EntityName()))
		b.emit(EventSelect, map[string]any{"all": true})
		return b
	}
	for _, attr := range attributes {
		el := b.entity.CreateElement("attribute")
		el.CreateAttr("name", attr)
	}
	b.selected = append(b.selected, attributes...)
	b.logger.Debug("selected attributes",
		zap.String("entity", b.EntityName()),
		zap.Strings("attributes", attributes))
	b.emit(EventSelect, map[string]any{"attributes": attributes})
	return b
}

// SelectAll is shorthand for Select(AllAttributes).
func (b *Builder) SelectAll() *Builder {
	return b.Select(AllAttributes)
}

// LinkBuilder is used to build a link-entity join configuration. It is
// obtained from Builder.LinkEntity and finalized with End.
type LinkBuilder struct {
	parent   *Builder
	name     string
	alias    string
	from     string
	to       string
	linkType LinkType
}

// LinkEntity begins the construction of a join to a related entity. Fields
// left unset default on End: alias to the entity name, from and to to
// "{name}id", and the link type to inner.
func (b *Builder) LinkEntity(name string) *LinkBuilder {
	return &LinkBuilder{parent: b, name: name}
}

// Alias sets the alias for the linked entity.
func (lb *LinkBuilder) Alias(alias string) *LinkBuilder {
	lb.alias = alias
	return lb
}

// From sets the field on the linked entity to join from.
func (lb *LinkBuilder) From(field string) *LinkBuilder {
	lb.from = field
	return lb
}

// To sets the field on the parent entity to join to.
func (lb *LinkBuilder) To(field string) *LinkBuilder {
	lb.to = field
	return lb
}

// Type sets the join semantics for the link.
func (lb *LinkBuilder) Type(linkType LinkType) *LinkBuilder {
	lb.linkType = linkType
	return lb
}

// Outer is shorthand for Type(LinkTypeOuter).
func (lb *LinkBuilder) Outer() *LinkBuilder {
	return lb.Type(LinkTypeOuter)
}

// End finalizes the link, appending a new link-entity element with defaults
// applied for any unset field. Each End appends an independent element; links
// to the same entity are never merged.
func (lb *LinkBuilder) End() *Builder {
	alias := lb.alias
	if alias == "" {
		alias = lb.name
	}
	from := lb.from
	if from == "" {
		from = lb.name + "id"
	}
	to := lb.to
	if to == "" {
		to = lb.name + "id"
	}
	linkType := lb.linkType
	if linkType == "" {
		linkType = LinkTypeInner
	}

	link := lb.parent.entity.CreateElement("link-entity")
	link.CreateAttr("name", lb.name)
	link.CreateAttr("alias", alias)
	link.CreateAttr("from", from)
	link.CreateAttr("to", to)
	link.CreateAttr("link-type", string(linkType))

	lb.parent.logger.Debug("linked entity",
		zap.String("entity", lb.parent.EntityName()),
		zap.String("name", lb.name),
		zap.String("alias", alias))
	lb.parent.emit(EventLink, map[string]any{
		"name":  lb.name,
		"alias": alias,
		"from":  from,
		"to":    to,
		"type":  string(linkType),
	})
	return lb.parent
}

// AddFilter appends a condition to the query's filter. The filter element
// (type "and") is created lazily on the first call and reused by every
// subsequent one, so all conditions added over the builder's lifetime are
// conjoined under a single filter. Or-grouping and nested filters are outside
// this builder's contract. The value is coerced to its textual form via
// FormatValue.
func (b *Builder) AddFilter(attribute string, operator ConditionOperator, value any) *Builder {
	if b.filter == nil {
		b.filter = b.entity.CreateElement("filter")
		b.filter.CreateAttr("type", "and")
	}
	cond := b.filter.CreateElement("condition")
	cond.CreateAttr("attribute", attribute)
	cond.CreateAttr("operator", string(operator))
	cond.CreateAttr("value", FormatValue(value))

	b.logger.Debug("added filter condition",
		zap.String("entity", b.EntityName()),
		zap.String("attribute", attribute),
		zap.String("operator", string(operator)))
	b.emit(EventFilter, map[string]any{
		"attribute": attribute,
		"operator":  string(operator),
		"value":     FormatValue(value),
	})
	return b
}

// ConditionBuilder is a helper for expressing a single filter condition
// against a specific attribute. It is not intended to be used directly but is
// part of the fluent API.
type ConditionBuilder struct {
	parent    *Builder
	attribute string
}

// Where begins the construction of a filter condition for a specific attribute.
func (b *Builder) Where(attribute string) *ConditionBuilder {
	return &ConditionBuilder{parent: b, attribute: attribute}
}

// Eq adds an equality condition to the query.
func (cb *ConditionBuilder) Eq(value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorEq, value)
}

// Neq adds a not-equal condition to the query.
func (cb *ConditionBuilder) Neq(value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorNeq, value)
}

// Gt adds a greater-than condition to the query.
func (cb *ConditionBuilder) Gt(value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorGt, value)
}

// Ge adds a greater-than-or-equal condition to the query.
func (cb *ConditionBuilder) Ge(value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorGe, value)
}

// Lt adds a less-than condition to the query.
func (cb *ConditionBuilder) Lt(value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorLt, value)
}

// Le adds a less-than-or-equal condition to the query.
func (cb *ConditionBuilder) Le(value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorLe, value)
}

// Like adds a pattern-match condition to the query.
func (cb *ConditionBuilder) Like(value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorLike, value)
}

// NotLike adds a negated pattern-match condition to the query.
func (cb *ConditionBuilder) NotLike(value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorNotLike, value)
}

// Null adds a condition matching records where the attribute has no value.
// The condition's value attribute is serialized empty.
func (cb *ConditionBuilder) Null() *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorNull, nil)
}

// NotNull adds a condition matching records where the attribute has a value.
// The condition's value attribute is serialized empty.
func (cb *ConditionBuilder) NotNull() *Builder {
	return cb.parent.AddFilter(cb.attribute, OperatorNotNull, nil)
}

// Custom allows for the use of a custom condition operator.
func (cb *ConditionBuilder) Custom(operator ConditionOperator, value any) *Builder {
	return cb.parent.AddFilter(cb.attribute, operator, value)
}

// AddOrder appends an order element for the given attribute. The descending
// flag is serialized as the literal string "true" or "false". Each call
// appends a new element.
func (b *Builder) AddOrder(attribute string, descending bool) *Builder {
	order := b.entity.CreateElement("order")
	order.CreateAttr("attribute", attribute)
	if descending {
		order.CreateAttr("descending", "true")
	} else {
		order.CreateAttr("descending", "false")
	}

	b.logger.Debug("added order",
		zap.String("entity", b.EntityName()),
		zap.String("attribute", attribute),
		zap.Bool("descending", descending))
	b.emit(EventOrder, map[string]any{
		"attribute":  attribute,
		"descending": descending,
	})
	return b
}

// OrderByAsc adds an ascending sort order for a specific attribute.
func (b *Builder) OrderByAsc(attribute string) *Builder {
	return b.AddOrder(attribute, false)
}

// OrderByDesc adds a descending sort order for a specific attribute.
func (b *Builder) OrderByDesc(attribute string) *Builder {
	return b.AddOrder(attribute, true)
}

// AddAggregate appends an attribute element carrying name, alias, and
// aggregate. The element shares its tag with plain selection attributes; a
// consumer must disambiguate by the presence of the alias and aggregate
// attributes, as the wire format prescribes.
func (b *Builder) AddAggregate(attribute, alias string, aggregate AggregationType) *Builder {
	el := b.entity.CreateElement("attribute")
	el.CreateAttr("name", attribute)
	el.CreateAttr("alias", alias)
	el.CreateAttr("aggregate", string(aggregate))

	b.logger.Debug("added aggregate",
		zap.String("entity", b.EntityName()),
		zap.String("attribute", attribute),
		zap.String("alias", alias),
		zap.String("aggregate", string(aggregate)))
	b.emit(EventAggregate, map[string]any{
		"attribute": attribute,
		"alias":     alias,
		"aggregate": string(aggregate),
	})
	return b
}

// Count adds a count aggregation over the given attribute.
func (b *Builder) Count(attribute, alias string) *Builder {
	return b.AddAggregate(attribute, alias, AggregationTypeCount)
}

// Sum adds a sum aggregation over the given attribute.
func (b *Builder) Sum(attribute, alias string) *Builder {
	return b.AddAggregate(attribute, alias, AggregationTypeSum)
}

// Avg adds an average aggregation over the given attribute.
func (b *Builder) Avg(attribute, alias string) *Builder {
	return b.AddAggregate(attribute, alias, AggregationTypeAvg)
}

// Min adds a minimum aggregation over the given attribute.
func (b *Builder) Min(attribute, alias string) *Builder {
	return b.AddAggregate(attribute, alias, AggregationTypeMin)
}

// Max adds a maximum aggregation over the given attribute.
func (b *Builder) Max(attribute, alias string) *Builder {
	return b.AddAggregate(attribute, alias, AggregationTypeMax)
}

// AddGroupBy appends, for each name, an attribute element carrying the name
// and groupby="true". The same tag-overloading caveat as AddAggregate applies.
func (b *Builder) AddGroupBy(attributes ...string) *Builder {
	for _, attr := range attributes {
		el := b.entity.CreateElement("attribute")
		el.CreateAttr("name", attr)
		el.CreateAttr("groupby", "true")
	}

	b.logger.Debug("added group by",
		zap.String("entity", b.EntityName()),
		zap.Strings("attributes", attributes))
	b.emit(EventGroupBy, map[string]any{"attributes": attributes})
	return b
}
