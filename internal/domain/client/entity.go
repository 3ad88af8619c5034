package client

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("client name must not be empty")
	ErrEmptyPlate    = errors.New("plate number must not be empty")
	ErrEmptyBranch   = errors.New("branch must not be empty")
	ErrAlreadyExists = errors.New("client with this plate number already exists")
)

// Client is a durable truck/owner identity keyed by plate number. It is
// registered at most once per plate and referenced by many visits over time.
type Client struct {
	id          uuid.UUID
	clientName  string
	plateNumber PlateNumber
	truckType   string
	truckBrand  string
	branch      string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewClient(clientName string, plate PlateNumber, truckType, truckBrand, branch string) (*Client, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, ErrEmptyName
	}
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil, ErrEmptyBranch
	}

	return &Client{
		id:          uuid.New(),
		clientName:  clientName,
		plateNumber: plate,
		truckType:   strings.TrimSpace(truckType),
		truckBrand:  strings.TrimSpace(truckBrand),
		branch:      branch,
	}, nil
}

func ReconstructClient(
	id uuid.UUID,
	clientName string,
	plate PlateNumber,
	truckType, truckBrand, branch string,
	createdAt, updatedAt time.Time,
) *Client {
	return &Client{
		id:          id,
		clientName:  clientName,
		plateNumber: plate,
		truckType:   truckType,
		truckBrand:  truckBrand,
		branch:      branch,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Client) ID() uuid.UUID            { return c.id }
func (c *Client) ClientName() string       { return c.clientName }
func (c *Client) PlateNumber() PlateNumber { return c.plateNumber }
func (c *Client) TruckType() string        { return c.truckType }
func (c *Client) TruckBrand() string       { return c.truckBrand }
func (c *Client) Branch() string           { return c.branch }
func (c *Client) CreatedAt() time.Time     { return c.createdAt }
func (c *Client) UpdatedAt() time.Time     { return c.updatedAt }

// PlateNumber compares case-insensitively; stored upper case.
type PlateNumber struct {
	value string
}

func NewPlateNumber(s string) (PlateNumber, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return PlateNumber{}, ErrEmptyPlate
	}
	return PlateNumber{value: s}, nil
}

func (p PlateNumber) Value() string {
	return p.value
}
