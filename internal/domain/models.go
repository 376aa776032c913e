package domain

import (
	"math/big"
	"time"
)

type Subnet struct {
	ID          int64
	Name        string
	Network     string
	Description *string
	VLANID      *int32
	Location    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Info is derived from Network on every read and never stored.
	Info *NetworkInfo
}

type IPAddress struct {
	ID          int64
	SubnetID    int64
	IP          string
	Hostname    *string
	Description *string
	IsAllocated bool
	AllocatedTo *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NetworkInfo struct {
	Network     string
	Netmask     string
	Broadcast   string
	Hosts       *big.Int
	UsableHosts *big.Int
	Prefix      int
}

type SubnetStats struct {
	SubnetID           int64
	Network            string
	Info               NetworkInfo
	TotalIPs           int64
	AllocatedIPs       int64
	AvailableIPs       *big.Int
	UtilizationPercent float64
}

// NewSubnetRecord is what the service hands to a repository on insert.
type NewSubnetRecord struct {
	Name        string
	Network     string
	Description *string
	VLANID      *int32
	Location    *string
	IsActive    bool
}

// NewIPRecord is what the service hands to a repository on insert.
type NewIPRecord struct {
	SubnetID    int64
	IP          string
	Hostname    *string
	Description *string
	IsAllocated bool
	AllocatedTo *string
}

type IPUsage struct {
	Total     int64
	Allocated int64
}
