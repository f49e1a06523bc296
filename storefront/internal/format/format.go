package format

import (
	"math"
	"strconv"
)

const rupee = "₹"

// Currency renders amount as whole Indian rupees with lakh/crore digit
// grouping, e.g. ₹1,23,456. Negative amounts keep their sign even when they
// round to zero.
func Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	rounded := math.Round(math.Abs(amount))
	return sign + rupee + groupIndian(strconv.FormatFloat(rounded, 'f', 0, 64))
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	out := tail
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}

var statusLabels = map[string]string{
	"pending":   "Order Placed",
	"confirmed": "Order Confirmed",
	"preparing": "Being Prepared",
	"ready":     "Ready for Delivery",
	"delivered": "Delivered",
	"cancelled": "Cancelled",
}

var statusColors = map[string]string{
	"pending":   "text-yellow-600 bg-yellow-50",
	"confirmed": "text-blue-600 bg-blue-50",
	"preparing": "text-orange-600 bg-orange-50",
	"ready":     "text-purple-600 bg-purple-50",
	"delivered": "text-green-600 bg-green-50",
	"cancelled": "text-red-600 bg-red-50",
}

const defaultStatusColor = "text-gray-600 bg-gray-50"

// OrderStatus returns the display label for an order status code. Unknown
// codes are returned unchanged.
func OrderStatus(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}

func StatusColor(code string) string {
	if color, ok := statusColors[code]; ok {
		return color
	}
	return defaultStatusColor
}
