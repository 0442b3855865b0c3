package leave

import (
	"context"

	"github.com/peoplecore/backoffice-go/internal/domain/leave"
)

type LeaveService struct {
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) *LeaveService {
	return &LeaveService{leaveRepo: leaveRepo}
}

func (s *LeaveService) Create(ctx context.Context, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.Request{
		EmployeeRef: req.EmployeeRef,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		Status:      leave.StatusPending,
		LeaveType:   req.LeaveType,
		Reason:      req.Reason,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}
	return leave.ToResponse(created), nil
}

func (s *LeaveService) GetByID(ctx context.Context, id string) (leave.RequestResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	return leave.ToResponse(req), nil
}

func (s *LeaveService) ListByEmployeeRef(ctx context.Context, employeeRef string) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListByEmployeeRef(ctx, employeeRef)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}

// UpdateStatus moves a pending request to Approved or Declined. The request
// must still exist; decided requests can be re-decided, matching how HR
// corrects mistakes.
func (s *LeaveService) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.leaveRepo.GetByID(ctx, id); err != nil {
		return leave.RequestResponse{}, err
	}
	if err := s.leaveRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return leave.RequestResponse{}, err
	}
	return s.GetByID(ctx, id)
}
