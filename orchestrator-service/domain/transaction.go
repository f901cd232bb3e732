package domain

import (
	"context"
	"strings"
	"time"

	"github.com/draftea/vehicle-sales-system/shared/events"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/pkg/errors"
)

// TransactionStatus represents the status of a saga transaction
type TransactionStatus string

const (
	TransactionStatusStarted      TransactionStatus = "started"
	TransactionStatusInProgress   TransactionStatus = "in_progress"
	TransactionStatusCompleted    TransactionStatus = "completed"
	TransactionStatusFailed       TransactionStatus = "failed"
	TransactionStatusCompensating TransactionStatus = "compensating"
	TransactionStatusCompensated  TransactionStatus = "compensated"
)

// TransactionType identifies the workflow a transaction executes
type TransactionType string

const (
	TransactionTypePurchaseVehicle TransactionType = "purchase_vehicle"
)

// Forward step names for the purchase_vehicle workflow, in execution order.
const (
	StepGetVehicleDetails   = "get_vehicle_details"
	StepCreateReservation   = "create_reservation"
	StepGeneratePaymentCode = "generate_payment_code"
	StepProcessPayment      = "process_payment"
	StepCreateSale          = "create_sale"
	StepUpdateVehicleStatus = "update_vehicle_status"
)

// purchaseVehicleSteps is the fixed forward sequence for purchase_vehicle.
// get_vehicle_details runs during transaction creation and is not part of it.
var purchaseVehicleSteps = []string{
	StepCreateReservation,
	StepGeneratePaymentCode,
	StepProcessPayment,
	StepCreateSale,
	StepUpdateVehicleStatus,
}

const compensatedSuffix = "_compensated"

// CompensatedStepName returns the synthetic step name that marks a forward
// step as compensated once present in CompletedSteps.
func CompensatedStepName(step string) string {
	return step + compensatedSuffix
}

// IsCompensationMarker reports whether a completed-step entry is a
// compensation marker rather than a forward step.
func IsCompensationMarker(step string) bool {
	return strings.HasSuffix(step, compensatedSuffix)
}

// Context keys for cross-cutting saga inputs.
const (
	ContextKeyAuthToken    = "auth_token"
	ContextKeyCustomerData = "customer_data"
	ContextKeyVehicleData  = "vehicle_data"
	ContextKeyVehiclePrice = "vehicle_price"
)

// StepDataKey returns the context key under which a step's result is stored.
func StepDataKey(step string) string {
	return step + "_data"
}

// Transaction is one saga instance: the mutable state record that carries a
// vehicle purchase from started to completed, or through compensation.
type Transaction struct {
	ID             models.ID
	CustomerID     models.ID
	VehicleID      models.ID
	Type           TransactionType
	Status         TransactionStatus
	CompletedSteps []string
	Context        map[string]interface{}
	FailureReason  *string
	FailedStep     *string
	ClaimedBy      *string
	LeaseExpiresAt *time.Time
	Timestamps     models.Timestamps
	Version        models.Version

	// persistedVersion is the version value the row currently holds in
	// storage. A mutation may bump Version more than once between persist
	// cycles, so the optimistic-lock predicate compares against this value.
	persistedVersion int

	events []*events.Event
}

// NewTransaction factory method
func NewTransaction(customerID, vehicleID models.ID) (*Transaction, error) {
	if customerID == "" {
		return nil, errors.New("customer ID is required")
	}
	if vehicleID == "" {
		return nil, errors.New("vehicle ID is required")
	}

	return &Transaction{
		ID:             models.GenerateUUID(),
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		Type:           TransactionTypePurchaseVehicle,
		Status:         TransactionStatusStarted,
		CompletedSteps: make([]string, 0),
		Context:        make(map[string]interface{}),
		Timestamps:     models.NewTimestamps(),
		Version:        models.NewVersion(),
	}, nil
}

// RestoreTransaction rebuilds a transaction from persisted state. It is the
// only rehydration path; the repository never injects private fields.
func RestoreTransaction(
	id, customerID, vehicleID models.ID,
	transactionType TransactionType,
	status TransactionStatus,
	completedSteps []string,
	context map[string]interface{},
	failureReason, failedStep *string,
	claimedBy *string,
	leaseExpiresAt *time.Time,
	timestamps models.Timestamps,
	version models.Version,
) *Transaction {
	if completedSteps == nil {
		completedSteps = make([]string, 0)
	}
	if context == nil {
		context = make(map[string]interface{})
	}

	return &Transaction{
		ID:               id,
		CustomerID:       customerID,
		VehicleID:        vehicleID,
		Type:             transactionType,
		Status:           status,
		CompletedSteps:   completedSteps,
		Context:          context,
		FailureReason:    failureReason,
		FailedStep:       failedStep,
		ClaimedBy:        claimedBy,
		LeaseExpiresAt:   leaseExpiresAt,
		Timestamps:       timestamps,
		Version:          version,
		persistedVersion: version.Value,
	}
}

// PersistedVersion returns the version value the transaction was last loaded
// from or written to storage with. Zero for a transaction never saved.
func (t *Transaction) PersistedVersion() int {
	return t.persistedVersion
}

// MarkPersisted records that the current version has been written to storage.
// The repository calls it after every successful insert or conditional update.
func (t *Transaction) MarkPersisted() {
	t.persistedVersion = t.Version.Value
}

// Steps returns the fixed forward step sequence for the transaction type.
func (t *Transaction) Steps() []string {
	switch t.Type {
	case TransactionTypePurchaseVehicle:
		return purchaseVehicleSteps
	default:
		return nil
	}
}

// CurrentStep returns the first forward step not yet completed, or false when
// every step has been executed.
func (t *Transaction) CurrentStep() (string, bool) {
	for _, step := range t.Steps() {
		if !t.HasCompletedStep(step) {
			return step, true
		}
	}
	return "", false
}

// HasCompletedStep reports whether a step name is recorded as completed.
func (t *Transaction) HasCompletedStep(step string) bool {
	for _, s := range t.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// StartProgress transitions started -> in_progress
func (t *Transaction) StartProgress() error {
	if t.Status != TransactionStatusStarted {
		return errors.Errorf("transaction can only start progress from started status, got %s", t.Status)
	}

	t.Status = TransactionStatusInProgress
	t.touch()

	event := events.NewEvent(t.ID, events.SagaTransactionStartedEvent, TransactionStartedData{
		TransactionID: t.ID,
		CustomerID:    t.CustomerID,
		VehicleID:     t.VehicleID,
		Type:          t.Type,
	})

	t.recordEvent(event)
	return nil
}

// CompleteStep records a successful step execution. Completion is idempotent:
// a step name is appended at most once and its result data is write-once.
func (t *Transaction) CompleteStep(step string, data interface{}) {
	if t.HasCompletedStep(step) {
		return
	}

	t.CompletedSteps = append(t.CompletedSteps, step)
	if data != nil {
		t.AddToContext(StepDataKey(step), data)
	}
	t.touch()
}

// FailStep records the first forward-step failure. Legal only while the
// transaction is started or in_progress, so a retried processor call cannot
// overwrite the recorded failure.
func (t *Transaction) FailStep(step, reason string) error {
	if t.Status != TransactionStatusStarted && t.Status != TransactionStatusInProgress {
		return errors.Errorf("transaction can only fail from started or in_progress status, got %s", t.Status)
	}

	t.Status = TransactionStatusFailed
	t.FailedStep = &step
	t.FailureReason = &reason
	t.touch()

	event := events.NewEvent(t.ID, events.SagaStepFailedEvent, StepFailedData{
		TransactionID: t.ID,
		Step:          step,
		Reason:        reason,
	})

	t.recordEvent(event)
	return nil
}

// Complete transitions in_progress -> completed once every forward step is done
func (t *Transaction) Complete() error {
	if t.Status != TransactionStatusInProgress {
		return errors.Errorf("transaction can only complete from in_progress status, got %s", t.Status)
	}
	if _, remaining := t.CurrentStep(); remaining {
		return errors.New("transaction cannot complete with pending steps")
	}

	t.Status = TransactionStatusCompleted
	t.touch()

	event := events.NewEvent(t.ID, events.SagaTransactionCompletedEvent, TransactionCompletedData{
		TransactionID:  t.ID,
		CustomerID:     t.CustomerID,
		VehicleID:      t.VehicleID,
		CompletedSteps: t.CompletedSteps,
	})

	t.recordEvent(event)
	return nil
}

// StartCompensation transitions failed -> compensating. There is no automatic
// edge from failed: compensation is always an explicit external decision.
func (t *Transaction) StartCompensation() error {
	if t.Status != TransactionStatusFailed {
		return errors.Errorf("transaction can only start compensation from failed status, got %s", t.Status)
	}

	t.Status = TransactionStatusCompensating
	t.touch()
	return nil
}

// NextCompensationStep walks the completed steps in reverse execution order
// and returns the first forward step without a compensation marker, or false
// when every completed forward step has been compensated.
func (t *Transaction) NextCompensationStep() (string, bool) {
	for i := len(t.CompletedSteps) - 1; i >= 0; i-- {
		step := t.CompletedSteps[i]
		if IsCompensationMarker(step) {
			continue
		}
		if !t.HasCompletedStep(CompensatedStepName(step)) {
			return step, true
		}
	}
	return "", false
}

// CompleteCompensation transitions compensating -> compensated
func (t *Transaction) CompleteCompensation() error {
	if t.Status != TransactionStatusCompensating {
		return errors.Errorf("transaction can only complete compensation from compensating status, got %s", t.Status)
	}

	t.Status = TransactionStatusCompensated
	t.touch()

	event := events.NewEvent(t.ID, events.SagaTransactionCompensatedEvent, TransactionCompensatedData{
		TransactionID: t.ID,
		CustomerID:    t.CustomerID,
		VehicleID:     t.VehicleID,
	})

	t.recordEvent(event)
	return nil
}

// ResetForRetry clears the recorded failure so a failed transaction can be
// re-driven from its current step. Used by the manual retry operation only.
func (t *Transaction) ResetForRetry() error {
	if t.Status != TransactionStatusFailed {
		return errors.Wrap(ErrTransactionNotRetryable, string(t.Status))
	}

	t.Status = TransactionStatusInProgress
	t.FailureReason = nil
	t.FailedStep = nil
	t.touch()
	return nil
}

// IsCompensating reports whether the transaction is rolling back
func (t *Transaction) IsCompensating() bool {
	return t.Status == TransactionStatusCompensating
}

// IsTerminal reports whether the transaction can no longer be advanced
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCompensated:
		return true
	default:
		return false
	}
}

// AddToContext stores a value in the saga context. Keys are write-once: the
// first recorded value wins, which keeps retried step executions idempotent.
func (t *Transaction) AddToContext(key string, value interface{}) {
	if _, exists := t.Context[key]; exists {
		return
	}
	t.Context[key] = value
	t.touch()
}

// FromContext returns a context value and whether it is present
func (t *Transaction) FromContext(key string) (interface{}, bool) {
	v, ok := t.Context[key]
	return v, ok
}

// Events returns recorded domain events
func (t *Transaction) Events() []*events.Event {
	return t.events
}

// ClearEvents clears recorded domain events
func (t *Transaction) ClearEvents() {
	t.events = make([]*events.Event, 0)
}

func (t *Transaction) recordEvent(event *events.Event) {
	t.events = append(t.events, event)
}

func (t *Transaction) touch() {
	t.Timestamps = t.Timestamps.Update()
	t.Version = t.Version.Update()
}

// Event data structures
type TransactionStartedData struct {
	TransactionID models.ID       `json:"transaction_id"`
	CustomerID    models.ID       `json:"customer_id"`
	VehicleID     models.ID       `json:"vehicle_id"`
	Type          TransactionType `json:"type"`
}

type StepFailedData struct {
	TransactionID models.ID `json:"transaction_id"`
	Step          string    `json:"step"`
	Reason        string    `json:"reason"`
}

type TransactionCompletedData struct {
	TransactionID  models.ID `json:"transaction_id"`
	CustomerID     models.ID `json:"customer_id"`
	VehicleID      models.ID `json:"vehicle_id"`
	CompletedSteps []string  `json:"completed_steps"`
}

type TransactionCompensatedData struct {
	TransactionID models.ID `json:"transaction_id"`
	CustomerID    models.ID `json:"customer_id"`
	VehicleID     models.ID `json:"vehicle_id"`
}

// TransactionRepository interface
type TransactionRepository interface {
	Save(ctx context.Context, transaction *Transaction) error
	FindByID(ctx context.Context, id models.ID) (*Transaction, error)
	FindByCustomerID(ctx context.Context, customerID models.ID) ([]*Transaction, error)
	FindByStatus(ctx context.Context, status TransactionStatus) ([]*Transaction, error)
	FindPendingTransactions(ctx context.Context) ([]*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id models.ID) error

	// Claim takes a time-bound lease on a transaction so that at most one
	// processor advances it, even with several orchestrator instances
	// scanning concurrently. Returns false when another owner holds a live
	// lease. Release drops the lease; an expired lease is claimable again
	// without release.
	Claim(ctx context.Context, id models.ID, owner string, lease time.Duration) (bool, error)
	Release(ctx context.Context, id models.ID, owner string) error
}
