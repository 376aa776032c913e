package domain

import (
	"context"
	"log/slog"
)

type loggingNetworkService struct {
	logger *slog.Logger
	next   NetworkService
}

func NewLoggingNetworkService(logger *slog.Logger, next NetworkService) NetworkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingNetworkService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingNetworkService) ListSubnets(ctx context.Context, input ListSubnetsInput) ([]Subnet, error) {
	subnets, err := s.next.ListSubnets(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "list subnets failed", "skip", input.Skip, "limit", input.Limit, "err", err.Error())
	}
	return subnets, err
}

func (s *loggingNetworkService) CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error) {
	subnet, err := s.next.CreateSubnet(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create subnet failed", "network", input.Network, "err", err.Error())
		return Subnet{}, err
	}

	s.logger.InfoContext(ctx, "subnet created", "id", subnet.ID, "network", subnet.Network)
	return subnet, nil
}

func (s *loggingNetworkService) GetSubnet(ctx context.Context, id int64) (Subnet, error) {
	subnet, err := s.next.GetSubnet(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get subnet failed", "id", id, "err", err.Error())
	}
	return subnet, err
}

func (s *loggingNetworkService) UpdateSubnet(ctx context.Context, id int64, input UpdateSubnetInput) (Subnet, error) {
	subnet, err := s.next.UpdateSubnet(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "update subnet failed", "id", id, "err", err.Error())
		return Subnet{}, err
	}

	s.logger.InfoContext(ctx, "subnet updated", "id", id)
	return subnet, nil
}

func (s *loggingNetworkService) DeleteSubnet(ctx context.Context, id int64) error {
	err := s.next.DeleteSubnet(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete subnet failed", "id", id, "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "subnet deleted", "id", id)
	return nil
}

func (s *loggingNetworkService) SubnetStats(ctx context.Context, id int64) (SubnetStats, error) {
	stats, err := s.next.SubnetStats(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "subnet stats failed", "id", id, "err", err.Error())
	}
	return stats, err
}

func (s *loggingNetworkService) ListIPs(ctx context.Context, subnetID int64) ([]IPAddress, error) {
	ips, err := s.next.ListIPs(ctx, subnetID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list ips failed", "subnet_id", subnetID, "err", err.Error())
	}
	return ips, err
}

func (s *loggingNetworkService) CreateIP(ctx context.Context, subnetID int64, input CreateIPInput) (IPAddress, error) {
	ip, err := s.next.CreateIP(ctx, subnetID, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create ip failed", "subnet_id", subnetID, "ip", input.IP, "err", err.Error())
		return IPAddress{}, err
	}

	s.logger.DebugContext(ctx, "ip created", "subnet_id", subnetID, "ip", ip.IP, "id", ip.ID)
	return ip, nil
}

func (s *loggingNetworkService) UpdateIP(ctx context.Context, subnetID int64, id int64, input UpdateIPInput) (IPAddress, error) {
	ip, err := s.next.UpdateIP(ctx, subnetID, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "update ip failed", "subnet_id", subnetID, "ip_id", id, "err", err.Error())
	}
	return ip, err
}

func (s *loggingNetworkService) DeleteIP(ctx context.Context, subnetID int64, id int64) error {
	err := s.next.DeleteIP(ctx, subnetID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete ip failed", "subnet_id", subnetID, "ip_id", id, "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "ip deleted", "subnet_id", subnetID, "ip_id", id)
	return nil
}
