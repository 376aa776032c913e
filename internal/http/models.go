package http

import (
	"bytes"
	"encoding/json"
	"math/big"
	"time"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

// Nullable records whether a JSON key was present and whether it was null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) optional() domain.Optional[T] {
	return domain.Optional[T]{Set: n.Set, Value: n.Value}
}

// NetworkInfoResponse is derived from the subnet's network on every read.
type NetworkInfoResponse struct {
	Network     string   `json:"network" example:"192.168.1.0"`
	Netmask     string   `json:"netmask" example:"255.255.255.0"`
	Broadcast   string   `json:"broadcast" example:"192.168.1.255"`
	Hosts       *big.Int `json:"hosts" swaggertype:"integer" example:"256"`
	UsableHosts *big.Int `json:"usable_hosts" swaggertype:"integer" example:"254"`
	Prefix      int      `json:"prefix" example:"24"`
}

// SubnetResponse is the subnet view returned to clients and used in Swagger.
type SubnetResponse struct {
	ID          int64                `json:"id" example:"1"`
	Name        string               `json:"name" example:"Office LAN"`
	Network     string               `json:"network" example:"192.168.1.0/24"`
	Description *string              `json:"description" example:"Office network"`
	VLANID      *int32               `json:"vlan_id" example:"10"`
	Location    *string              `json:"location" example:"Seoul DC1"`
	IsActive    bool                 `json:"is_active" example:"true"`
	CreatedAt   time.Time            `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt   time.Time            `json:"updated_at" example:"2024-05-10T15:04:05Z"`
	NetworkInfo *NetworkInfoResponse `json:"network_info"`
}

// StatsResponse reports address usage for one subnet.
type StatsResponse struct {
	SubnetID           int64               `json:"subnet_id" example:"1"`
	Network            string              `json:"network" example:"192.168.1.0/24"`
	NetworkInfo        NetworkInfoResponse `json:"network_info"`
	TotalIPs           int64               `json:"total_ips" example:"128"`
	AllocatedIPs       int64               `json:"allocated_ips" example:"127"`
	AvailableIPs       *big.Int            `json:"available_ips" swaggertype:"integer" example:"127"`
	UtilizationPercent float64             `json:"utilization_percent" example:"50"`
}

// CreateSubnetRequest is the payload accepted when creating a subnet.
type CreateSubnetRequest struct {
	Name        *string `json:"name" example:"Office LAN" validate:"required"`
	Network     *string `json:"network" example:"192.168.1.0/24" validate:"required"`
	Description *string `json:"description" example:"Office network"`
	VLANID      *int32  `json:"vlan_id" example:"10"`
	Location    *string `json:"location" example:"Seoul DC1"`
	IsActive    *bool   `json:"is_active" example:"true"`
}

// UpdateSubnetRequest is a partial update; omitted keys are left unchanged.
type UpdateSubnetRequest struct {
	Name        Nullable[string] `json:"name" swaggertype:"string" example:"Office LAN"`
	Description Nullable[string] `json:"description" swaggertype:"string" example:"Office network"`
	VLANID      Nullable[int32]  `json:"vlan_id" swaggertype:"integer" example:"20"`
	Location    Nullable[string] `json:"location" swaggertype:"string" example:"Busan DC2"`
	IsActive    Nullable[bool]   `json:"is_active" swaggertype:"boolean" example:"false"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"subnet not found"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"ipam"`
}

// IPResponse is the address view returned to clients and used in Swagger.
type IPResponse struct {
	ID          int64     `json:"id" example:"7"`
	SubnetID    int64     `json:"subnet_id" example:"1"`
	IP          string    `json:"ip_address" example:"192.168.1.10"`
	Hostname    *string   `json:"hostname" example:"printer-1"`
	Description *string   `json:"description" example:"2nd floor printer"`
	IsAllocated bool      `json:"is_allocated" example:"true"`
	AllocatedTo *string   `json:"allocated_to" example:"facilities"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateIPRequest is the payload accepted when creating an ip.
type CreateIPRequest struct {
	IP          *string `json:"ip_address" example:"192.168.1.10" validate:"required"`
	Hostname    *string `json:"hostname" example:"printer-1"`
	Description *string `json:"description" example:"2nd floor printer"`
	IsAllocated bool    `json:"is_allocated" example:"true"`
	AllocatedTo *string `json:"allocated_to" example:"facilities"`
}

// UpdateIPRequest is a partial update; omitted keys are left unchanged.
type UpdateIPRequest struct {
	Hostname    Nullable[string] `json:"hostname" swaggertype:"string" example:"pc-1"`
	Description Nullable[string] `json:"description" swaggertype:"string" example:"desk 12"`
	IsAllocated Nullable[bool]   `json:"is_allocated" swaggertype:"boolean" example:"false"`
	AllocatedTo Nullable[string] `json:"allocated_to" swaggertype:"string" example:"alice"`
}

func networkInfoToResponse(info domain.NetworkInfo) NetworkInfoResponse {
	return NetworkInfoResponse{
		Network:     info.Network,
		Netmask:     info.Netmask,
		Broadcast:   info.Broadcast,
		Hosts:       info.Hosts,
		UsableHosts: info.UsableHosts,
		Prefix:      info.Prefix,
	}
}

func subnetToResponse(s domain.Subnet) SubnetResponse {
	resp := SubnetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Network:     s.Network,
		Description: s.Description,
		VLANID:      s.VLANID,
		Location:    s.Location,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Info != nil {
		info := networkInfoToResponse(*s.Info)
		resp.NetworkInfo = &info
	}
	return resp
}

func subnetsToResponse(subnets []domain.Subnet) []SubnetResponse {
	out := make([]SubnetResponse, 0, len(subnets))
	for _, s := range subnets {
		out = append(out, subnetToResponse(s))
	}
	return out
}

func statsToResponse(s domain.SubnetStats) StatsResponse {
	return StatsResponse{
		SubnetID:           s.SubnetID,
		Network:            s.Network,
		NetworkInfo:        networkInfoToResponse(s.Info),
		TotalIPs:           s.TotalIPs,
		AllocatedIPs:       s.AllocatedIPs,
		AvailableIPs:       s.AvailableIPs,
		UtilizationPercent: s.UtilizationPercent,
	}
}

func ipToResponse(i domain.IPAddress) IPResponse {
	return IPResponse{
		ID:          i.ID,
		SubnetID:    i.SubnetID,
		IP:          i.IP,
		Hostname:    i.Hostname,
		Description: i.Description,
		IsAllocated: i.IsAllocated,
		AllocatedTo: i.AllocatedTo,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func ipsToResponse(ips []domain.IPAddress) []IPResponse {
	out := make([]IPResponse, 0, len(ips))
	for _, ip := range ips {
		out = append(out, ipToResponse(ip))
	}
	return out
}

func (r CreateSubnetRequest) toInput() domain.CreateSubnetInput {
	input := domain.CreateSubnetInput{
		Description: r.Description,
		VLANID:      r.VLANID,
		Location:    r.Location,
		IsActive:    r.IsActive,
	}
	if r.Name != nil {
		input.Name = *r.Name
	}
	if r.Network != nil {
		input.Network = *r.Network
	}
	return input
}

func (r UpdateSubnetRequest) toInput() domain.UpdateSubnetInput {
	return domain.UpdateSubnetInput{
		Name:        r.Name.optional(),
		Description: r.Description.optional(),
		VLANID:      r.VLANID.optional(),
		Location:    r.Location.optional(),
		IsActive:    r.IsActive.optional(),
	}
}

func (r CreateIPRequest) toInput() domain.CreateIPInput {
	input := domain.CreateIPInput{
		Hostname:    r.Hostname,
		Description: r.Description,
		IsAllocated: r.IsAllocated,
		AllocatedTo: r.AllocatedTo,
	}
	if r.IP != nil {
		input.IP = *r.IP
	}
	return input
}

func (r UpdateIPRequest) toInput() domain.UpdateIPInput {
	return domain.UpdateIPInput{
		Hostname:    r.Hostname.optional(),
		Description: r.Description.optional(),
		IsAllocated: r.IsAllocated.optional(),
		AllocatedTo: r.AllocatedTo.optional(),
	}
}
