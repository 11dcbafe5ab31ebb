package response

import (
	"time"

	"venue-booking/internal/pkg/timeofday"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Views carry domain-shaped values; responses are flat JSON with unix seconds,
// string ids and "HH:MM" times.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: &uuid.UUID{},
			DstType: new(string),
			Fn: func(src any) (any, error) {
				id := src.(*uuid.UUID)
				if id == nil {
					return (*string)(nil), nil
				}
				s := id.String()
				return &s, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: &time.Time{},
			DstType: new(int64),
			Fn: func(src any) (any, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*int64)(nil), nil
				}
				u := t.Unix()
				return &u, nil
			},
		},
		{
			SrcType: timeofday.TimeOfDay(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(timeofday.TimeOfDay).String(), nil
			},
		},
		{
			SrcType: new(timeofday.TimeOfDay),
			DstType: new(string),
			Fn: func(src any) (any, error) {
				t := src.(*timeofday.TimeOfDay)
				if t == nil {
					return (*string)(nil), nil
				}
				s := t.String()
				return &s, nil
			},
		},
	},
}

func copyInto(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}
