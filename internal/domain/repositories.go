package domain

import "context"

type SubnetFilter struct {
	IsActive *bool
	Offset   int
	Limit    int
}

type SubnetRepository interface {
	List(ctx context.Context, filter SubnetFilter) ([]Subnet, error)
	FindByID(ctx context.Context, id int64) (Subnet, error)
	ExistsByNetwork(ctx context.Context, network string) (bool, error)
	Create(ctx context.Context, record NewSubnetRecord) (Subnet, error)
	Update(ctx context.Context, id int64, input UpdateSubnetInput) (Subnet, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type IPRepository interface {
	ListBySubnetID(ctx context.Context, subnetID int64) ([]IPAddress, error)
	FindByIDAndSubnet(ctx context.Context, id int64, subnetID int64) (IPAddress, error)
	Create(ctx context.Context, record NewIPRecord) (IPAddress, error)
	Update(ctx context.Context, id int64, input UpdateIPInput) (IPAddress, error)
	DeleteByIDAndSubnet(ctx context.Context, id int64, subnetID int64) (bool, error)
	UsageBySubnetID(ctx context.Context, subnetID int64) (IPUsage, error)
}
