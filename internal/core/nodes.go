package core

import (
	"github.com/awcullen/opcua/ua"
)

// OPC UA namespace indices used by the simulator
const (
	NamespaceFleet uint16 = 2
	NamespaceDepot uint16 = 3
)

// NodeDefinition describes an OPC UA variable node
type NodeDefinition struct {
	Name         string      // Node name (e.g., "TrainCount")
	DisplayName  string      // Human-readable name
	Description  string      // Description of the node
	DataType     DataType    // Data type (Double, Int32, String, etc.)
	Unit         string      // Engineering unit, if any
	InitialValue interface{} // Initial/default value
}

// DataType represents OPC UA data types
type DataType int

const (
	DataTypeDouble DataType = iota
	DataTypeFloat
	DataTypeInt32
	DataTypeInt64
	DataTypeString
	DataTypeBool
	DataTypeDateTime
)

// OPCUADataType maps a DataType to its OPC UA data type node id
func OPCUADataType(dt DataType) ua.NodeID {
	switch dt {
	case DataTypeDouble:
		return ua.DataTypeIDDouble
	case DataTypeFloat:
		return ua.DataTypeIDFloat
	case DataTypeInt32:
		return ua.DataTypeIDInt32
	case DataTypeInt64:
		return ua.DataTypeIDInt64
	case DataTypeString:
		return ua.DataTypeIDString
	case DataTypeBool:
		return ua.DataTypeIDBoolean
	case DataTypeDateTime:
		return ua.DataTypeIDDateTime
	default:
		return ua.DataTypeIDBaseDataType
	}
}

func (dt DataType) String() string {
	switch dt {
	case DataTypeDouble:
		return "Double"
	case DataTypeFloat:
		return "Float"
	case DataTypeInt32:
		return "Int32"
	case DataTypeInt64:
		return "Int64"
	case DataTypeString:
		return "String"
	case DataTypeBool:
		return "Boolean"
	case DataTypeDateTime:
		return "DateTime"
	default:
		return "Unknown"
	}
}
