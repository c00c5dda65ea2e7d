package types

import (
	"fmt"
	"io"
	math_bits "math/bits"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/gogo/protobuf/proto"
)

// MsgSubmitEthereumTxConfirmation and MsgSubmitEthereumEvent carry a codectypes.Any, which the
// reflection based table unmarshaller cannot walk. Both implement the gogoproto marshaler
// interfaces directly and delegate the Any to its generated methods.

var (
	_ proto.Marshaler                    = &MsgSubmitEthereumTxConfirmation{}
	_ proto.Unmarshaler                  = &MsgSubmitEthereumTxConfirmation{}
	_ codectypes.UnpackInterfacesMessage = &MsgSubmitEthereumTxConfirmation{}
	_ proto.Marshaler                    = &MsgSubmitEthereumEvent{}
	_ proto.Unmarshaler                  = &MsgSubmitEthereumEvent{}
	_ codectypes.UnpackInterfacesMessage = &MsgSubmitEthereumEvent{}
)

var (
	errInvalidLengthTx = fmt.Errorf("proto: negative length found during unmarshaling")
	errIntOverflowTx   = fmt.Errorf("proto: integer overflow")
)

func (m *MsgSubmitEthereumTxConfirmation) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalToSizedBuffer(dAtA[:size])
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *MsgSubmitEthereumTxConfirmation) MarshalTo(dAtA []byte) (int, error) {
	size := m.Size()
	return m.MarshalToSizedBuffer(dAtA[:size])
}

func (m *MsgSubmitEthereumTxConfirmation) MarshalToSizedBuffer(dAtA []byte) (int, error) {
	return marshalAnyEnvelope(dAtA, m.Confirmation, m.Signer)
}

func (m *MsgSubmitEthereumTxConfirmation) Size() int {
	if m == nil {
		return 0
	}
	return anyEnvelopeSize(m.Confirmation, m.Signer)
}

func (m *MsgSubmitEthereumTxConfirmation) Unmarshal(dAtA []byte) error {
	return unmarshalAnyEnvelope(dAtA, "MsgSubmitEthereumTxConfirmation", &m.Confirmation, &m.Signer)
}

func (m *MsgSubmitEthereumTxConfirmation) XXX_Unmarshal(b []byte) error {
	return m.Unmarshal(b)
}

func (m *MsgSubmitEthereumTxConfirmation) XXX_Marshal(b []byte, _ bool) ([]byte, error) {
	b = b[:cap(b)]
	n, err := m.MarshalToSizedBuffer(b)
	if err != nil {
		return nil, err
	}
	return b[:n], nil
}

func (m *MsgSubmitEthereumTxConfirmation) XXX_Merge(src proto.Message) {
	if s, ok := src.(*MsgSubmitEthereumTxConfirmation); ok {
		m.Confirmation = mergeAny(m.Confirmation, s.Confirmation)
		if s.Signer != "" {
			m.Signer = s.Signer
		}
	}
}

func (m *MsgSubmitEthereumTxConfirmation) XXX_Size() int { return m.Size() }

// XXX_DiscardUnknown is a no-op, Unmarshal never retains unknown fields.
func (m *MsgSubmitEthereumTxConfirmation) XXX_DiscardUnknown() {}

// UnpackInterfaces implements codectypes.UnpackInterfacesMessage
func (m *MsgSubmitEthereumTxConfirmation) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	if m.Confirmation == nil {
		return nil
	}
	var conf EthereumTxConfirmation
	return unpacker.UnpackAny(m.Confirmation, &conf)
}

func (m *MsgSubmitEthereumEvent) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalToSizedBuffer(dAtA[:size])
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *MsgSubmitEthereumEvent) MarshalTo(dAtA []byte) (int, error) {
	size := m.Size()
	return m.MarshalToSizedBuffer(dAtA[:size])
}

func (m *MsgSubmitEthereumEvent) MarshalToSizedBuffer(dAtA []byte) (int, error) {
	return marshalAnyEnvelope(dAtA, m.Event, m.Signer)
}

func (m *MsgSubmitEthereumEvent) Size() int {
	if m == nil {
		return 0
	}
	return anyEnvelopeSize(m.Event, m.Signer)
}

func (m *MsgSubmitEthereumEvent) Unmarshal(dAtA []byte) error {
	return unmarshalAnyEnvelope(dAtA, "MsgSubmitEthereumEvent", &m.Event, &m.Signer)
}

func (m *MsgSubmitEthereumEvent) XXX_Unmarshal(b []byte) error {
	return m.Unmarshal(b)
}

func (m *MsgSubmitEthereumEvent) XXX_Marshal(b []byte, _ bool) ([]byte, error) {
	b = b[:cap(b)]
	n, err := m.MarshalToSizedBuffer(b)
	if err != nil {
		return nil, err
	}
	return b[:n], nil
}

func (m *MsgSubmitEthereumEvent) XXX_Merge(src proto.Message) {
	if s, ok := src.(*MsgSubmitEthereumEvent); ok {
		m.Event = mergeAny(m.Event, s.Event)
		if s.Signer != "" {
			m.Signer = s.Signer
		}
	}
}

func (m *MsgSubmitEthereumEvent) XXX_Size() int { return m.Size() }

// XXX_DiscardUnknown is a no-op, Unmarshal never retains unknown fields.
func (m *MsgSubmitEthereumEvent) XXX_DiscardUnknown() {}

// UnpackInterfaces implements codectypes.UnpackInterfacesMessage
func (m *MsgSubmitEthereumEvent) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	if m.Event == nil {
		return nil
	}
	var event EthereumEvent
	return unpacker.UnpackAny(m.Event, &event)
}

// marshalAnyEnvelope writes field 1 (the Any) and field 2 (the signer) into the tail of dAtA.
func marshalAnyEnvelope(dAtA []byte, packed *codectypes.Any, signer string) (int, error) {
	i := len(dAtA)
	if len(signer) > 0 {
		i -= len(signer)
		copy(dAtA[i:], signer)
		i = encodeVarintTx(dAtA, i, uint64(len(signer)))
		i--
		dAtA[i] = 0x12
	}
	if packed != nil {
		size, err := packed.MarshalToSizedBuffer(dAtA[:i])
		if err != nil {
			return 0, err
		}
		i -= size
		i = encodeVarintTx(dAtA, i, uint64(size))
		i--
		dAtA[i] = 0xa
	}
	return len(dAtA) - i, nil
}

func anyEnvelopeSize(packed *codectypes.Any, signer string) (n int) {
	if packed != nil {
		l := packed.Size()
		n += 1 + l + sovTx(uint64(l))
	}
	if l := len(signer); l > 0 {
		n += 1 + l + sovTx(uint64(l))
	}
	return n
}

func unmarshalAnyEnvelope(dAtA []byte, name string, packed **codectypes.Any, signer *string) error {
	iNdEx := 0
	for iNdEx < len(dAtA) {
		wire, next, err := readUvarintTx(dAtA, iNdEx)
		if err != nil {
			return err
		}
		iNdEx = next
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if fieldNum <= 0 {
			return fmt.Errorf("proto: %s: illegal tag %d (wire type %d)", name, fieldNum, wireType)
		}
		switch fieldNum {
		case 1, 2:
			if wireType != 2 {
				return fmt.Errorf("proto: %s: wrong wireType = %d for field %d", name, wireType, fieldNum)
			}
			bz, next, err := readBytesTx(dAtA, iNdEx)
			if err != nil {
				return err
			}
			if fieldNum == 1 {
				if *packed == nil {
					*packed = &codectypes.Any{}
				}
				if err := (*packed).Unmarshal(bz); err != nil {
					return err
				}
			} else {
				*signer = string(bz)
			}
			iNdEx = next
		default:
			next, err := skipTx(dAtA, iNdEx, wireType)
			if err != nil {
				return err
			}
			iNdEx = next
		}
	}
	return nil
}

// mergeAny follows proto3 merge semantics: non-empty scalar fields of src overwrite dst.
func mergeAny(dst, src *codectypes.Any) *codectypes.Any {
	if src == nil {
		return dst
	}
	if dst == nil {
		dst = &codectypes.Any{}
	}
	if src.TypeUrl != "" {
		dst.TypeUrl = src.TypeUrl
	}
	if len(src.Value) > 0 {
		dst.Value = append([]byte(nil), src.Value...)
	}
	return dst
}

func encodeVarintTx(dAtA []byte, offset int, v uint64) int {
	offset -= sovTx(v)
	base := offset
	for v >= 1<<7 {
		dAtA[offset] = uint8(v&0x7f | 0x80)
		v >>= 7
		offset++
	}
	dAtA[offset] = uint8(v)
	return base
}

func sovTx(x uint64) int {
	return (math_bits.Len64(x|1) + 6) / 7
}

func readUvarintTx(dAtA []byte, iNdEx int) (uint64, int, error) {
	var v uint64
	for shift := uint(0); ; shift += 7 {
		if shift >= 64 {
			return 0, 0, errIntOverflowTx
		}
		if iNdEx >= len(dAtA) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := dAtA[iNdEx]
		iNdEx++
		v |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return v, iNdEx, nil
		}
	}
}

func readBytesTx(dAtA []byte, iNdEx int) ([]byte, int, error) {
	l, iNdEx, err := readUvarintTx(dAtA, iNdEx)
	if err != nil {
		return nil, 0, err
	}
	if int64(l) < 0 {
		return nil, 0, errInvalidLengthTx
	}
	if l > uint64(len(dAtA)-iNdEx) {
		return nil, 0, io.ErrUnexpectedEOF
	}
	postIndex := iNdEx + int(l)
	return dAtA[iNdEx:postIndex], postIndex, nil
}

func skipTx(dAtA []byte, iNdEx int, wireType int) (int, error) {
	switch wireType {
	case 0:
		_, next, err := readUvarintTx(dAtA, iNdEx)
		return next, err
	case 1:
		iNdEx += 8
	case 2:
		_, next, err := readBytesTx(dAtA, iNdEx)
		return next, err
	case 5:
		iNdEx += 4
	default:
		return 0, fmt.Errorf("proto: illegal wireType %d", wireType)
	}
	if iNdEx > len(dAtA) {
		return 0, io.ErrUnexpectedEOF
	}
	return iNdEx, nil
}
