package domain

// Optional distinguishes a field that was not supplied from one supplied as null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000

	// MaxNetworkLength matches the width of the subnets.network column.
	MaxNetworkLength = 50
)

type ListSubnetsInput struct {
	Skip     int
	Limit    int
	IsActive *bool
}

type CreateSubnetInput struct {
	Name        string
	Network     string
	Description *string
	VLANID      *int32
	Location    *string
	IsActive    *bool
}

type UpdateSubnetInput struct {
	Name        Optional[string]
	Description Optional[string]
	VLANID      Optional[int32]
	Location    Optional[string]
	IsActive    Optional[bool]
}

type CreateIPInput struct {
	IP          string
	Hostname    *string
	Description *string
	IsAllocated bool
	AllocatedTo *string
}

type UpdateIPInput struct {
	Hostname    Optional[string]
	Description Optional[string]
	IsAllocated Optional[bool]
	AllocatedTo Optional[string]
}
