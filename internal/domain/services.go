package domain

import "context"

type NetworkService interface {
	ListSubnets(ctx context.Context, input ListSubnetsInput) ([]Subnet, error)
	CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error)
	GetSubnet(ctx context.Context, id int64) (Subnet, error)
	UpdateSubnet(ctx context.Context, id int64, input UpdateSubnetInput) (Subnet, error)
	DeleteSubnet(ctx context.Context, id int64) error
	SubnetStats(ctx context.Context, id int64) (SubnetStats, error)
	ListIPs(ctx context.Context, subnetID int64) ([]IPAddress, error)
	CreateIP(ctx context.Context, subnetID int64, input CreateIPInput) (IPAddress, error)
	UpdateIP(ctx context.Context, subnetID int64, id int64, input UpdateIPInput) (IPAddress, error)
	DeleteIP(ctx context.Context, subnetID int64, id int64) error
}
