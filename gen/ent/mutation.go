// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pathlight/insights-engine/gen/ent/insightrecord"
	"github.com/pathlight/insights-engine/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInsightRecord = "InsightRecord"
)

// InsightRecordMutation represents an operation that mutates the InsightRecord nodes in the graph.
type InsightRecordMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	user_id        *string
	kind           *string
	request_params *map[string]interface{}
	payload        *map[string]interface{}
	origin         *string
	confidence     *int
	addconfidence  *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*InsightRecord, error)
	predicates     []predicate.InsightRecord
}

var _ ent.Mutation = (*InsightRecordMutation)(nil)

// insightrecordOption allows management of the mutation configuration using functional options.
type insightrecordOption func(*InsightRecordMutation)

// newInsightRecordMutation creates new mutation for the InsightRecord entity.
func newInsightRecordMutation(c config, op Op, opts ...insightrecordOption) *InsightRecordMutation {
	m := &InsightRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeInsightRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightRecordID sets the ID field of the mutation.
func withInsightRecordID(id uuid.UUID) insightrecordOption {
	return func(m *InsightRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *InsightRecord
		)
		m.oldValue = func(ctx context.Context) (*InsightRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InsightRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsightRecord sets the old InsightRecord of the mutation.
func withInsightRecord(node *InsightRecord) insightrecordOption {
	return func(m *InsightRecordMutation) {
		m.oldValue = func(context.Context) (*InsightRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InsightRecord entities.
func (m *InsightRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InsightRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InsightRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InsightRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InsightRecord entity.
// If the InsightRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightRecordMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *InsightRecordMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[insightrecord.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *InsightRecordMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[insightrecord.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InsightRecordMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, insightrecord.FieldUserID)
}

// SetKind sets the "kind" field.
func (m *InsightRecordMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *InsightRecordMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the InsightRecord entity.
// If the InsightRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightRecordMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *InsightRecordMutation) ResetKind() {
	m.kind = nil
}

// SetRequestParams sets the "request_params" field.
func (m *InsightRecordMutation) SetRequestParams(value map[string]interface{}) {
	m.request_params = &value
}

// RequestParams returns the value of the "request_params" field in the mutation.
func (m *InsightRecordMutation) RequestParams() (r map[string]interface{}, exists bool) {
	v := m.request_params
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestParams returns the old "request_params" field's value of the InsightRecord entity.
// If the InsightRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightRecordMutation) OldRequestParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestParams: %w", err)
	}
	return oldValue.RequestParams, nil
}

// ClearRequestParams clears the value of the "request_params" field.
func (m *InsightRecordMutation) ClearRequestParams() {
	m.request_params = nil
	m.clearedFields[insightrecord.FieldRequestParams] = struct{}{}
}

// RequestParamsCleared returns if the "request_params" field was cleared in this mutation.
func (m *InsightRecordMutation) RequestParamsCleared() bool {
	_, ok := m.clearedFields[insightrecord.FieldRequestParams]
	return ok
}

// ResetRequestParams resets all changes to the "request_params" field.
func (m *InsightRecordMutation) ResetRequestParams() {
	m.request_params = nil
	delete(m.clearedFields, insightrecord.FieldRequestParams)
}

// SetPayload sets the "payload" field.
func (m *InsightRecordMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *InsightRecordMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the InsightRecord entity.
// If the InsightRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightRecordMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *InsightRecordMutation) ResetPayload() {
	m.payload = nil
}

// SetOrigin sets the "origin" field.
func (m *InsightRecordMutation) SetOrigin(s string) {
	m.origin = &s
}

// Origin returns the value of the "origin" field in the mutation.
func (m *InsightRecordMutation) Origin() (r string, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the InsightRecord entity.
// If the InsightRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightRecordMutation) OldOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *InsightRecordMutation) ResetOrigin() {
	m.origin = nil
}

// SetConfidence sets the "confidence" field.
func (m *InsightRecordMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *InsightRecordMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the InsightRecord entity.
// If the InsightRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightRecordMutation) OldConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *InsightRecordMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *InsightRecordMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *InsightRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InsightRecord entity.
// If the InsightRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InsightRecordMutation builder.
func (m *InsightRecordMutation) Where(ps ...predicate.InsightRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InsightRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InsightRecord).
func (m *InsightRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, insightrecord.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, insightrecord.FieldKind)
	}
	if m.request_params != nil {
		fields = append(fields, insightrecord.FieldRequestParams)
	}
	if m.payload != nil {
		fields = append(fields, insightrecord.FieldPayload)
	}
	if m.origin != nil {
		fields = append(fields, insightrecord.FieldOrigin)
	}
	if m.confidence != nil {
		fields = append(fields, insightrecord.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, insightrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insightrecord.FieldUserID:
		return m.UserID()
	case insightrecord.FieldKind:
		return m.Kind()
	case insightrecord.FieldRequestParams:
		return m.RequestParams()
	case insightrecord.FieldPayload:
		return m.Payload()
	case insightrecord.FieldOrigin:
		return m.Origin()
	case insightrecord.FieldConfidence:
		return m.Confidence()
	case insightrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insightrecord.FieldUserID:
		return m.OldUserID(ctx)
	case insightrecord.FieldKind:
		return m.OldKind(ctx)
	case insightrecord.FieldRequestParams:
		return m.OldRequestParams(ctx)
	case insightrecord.FieldPayload:
		return m.OldPayload(ctx)
	case insightrecord.FieldOrigin:
		return m.OldOrigin(ctx)
	case insightrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case insightrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InsightRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insightrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case insightrecord.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case insightrecord.FieldRequestParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestParams(v)
		return nil
	case insightrecord.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case insightrecord.FieldOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case insightrecord.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case insightrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InsightRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, insightrecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case insightrecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case insightrecord.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown InsightRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insightrecord.FieldUserID) {
		fields = append(fields, insightrecord.FieldUserID)
	}
	if m.FieldCleared(insightrecord.FieldRequestParams) {
		fields = append(fields, insightrecord.FieldRequestParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightRecordMutation) ClearField(name string) error {
	switch name {
	case insightrecord.FieldUserID:
		m.ClearUserID()
		return nil
	case insightrecord.FieldRequestParams:
		m.ClearRequestParams()
		return nil
	}
	return fmt.Errorf("unknown InsightRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightRecordMutation) ResetField(name string) error {
	switch name {
	case insightrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case insightrecord.FieldKind:
		m.ResetKind()
		return nil
	case insightrecord.FieldRequestParams:
		m.ResetRequestParams()
		return nil
	case insightrecord.FieldPayload:
		m.ResetPayload()
		return nil
	case insightrecord.FieldOrigin:
		m.ResetOrigin()
		return nil
	case insightrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case insightrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InsightRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InsightRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InsightRecord edge %s", name)
}
